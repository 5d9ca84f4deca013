/*
Package storagemodels defines the parameter and result types shared by the snapshot
datastores.

QueryParams:
Snapshots of one entity type live in one partition, ordered by key:

	params := &QueryParams{
	    EntityType: "Ticket",
	    KeyPrefix:  "12#",          // every ticket of service desk 12
	    Limit:      aws.Int32(50),
	}

StreamResult:
Streams deliver each snapshot with its key and position:

	for res := range store.Stream(ctx, params, WithPageSize(25)) {
	    if res.Error != nil {
	        return res.Error
	    }
	    fmt.Println(res.Key, res.Meta.Index)
	}

StreamOptions:

	opts := []StreamOption{
	    WithBufferSize(100),
	    WithPageSize(25),
	    WithMaxRetries(3),
	    WithProgressHandler(progressFunc),
	}
*/
package storagemodels
