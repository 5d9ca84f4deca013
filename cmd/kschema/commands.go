/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/suparena/kaseyaschema"
	"github.com/suparena/kaseyaschema/config"
	"github.com/suparena/kaseyaschema/datastore/ddb"
	"github.com/suparena/kaseyaschema/errors"
	"github.com/suparena/kaseyaschema/logger"
	"github.com/suparena/kaseyaschema/processor"
	"github.com/suparena/kaseyaschema/schema"
	"github.com/suparena/kaseyaschema/storagemodels"
)

// newSnapshotAPI opens the DynamoDB client used by the snapshot command.
var newSnapshotAPI = func(ctx context.Context, cfg *config.Config) (ddb.API, error) {
	return ddb.NewDynamoDBClient(ctx, ddb.Options{
		Table:           cfg.DynamoDB.Table,
		Region:          cfg.AWS.Region,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.DynamoDB.Endpoint,
	})
}

func newFlagSet(env *environment, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	return fs
}

func runEntities(_ context.Context, env *environment, args []string) error {
	fs := newFlagSet(env, "entities")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(env.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tFIELDS\tFILTERABLE\tSORTABLE")
	for _, e := range kaseyaschema.Catalogue().Entities() {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", e.Name, len(e.Fields), len(e.FilterableFields()), len(e.SortableFields()))
	}
	return tw.Flush()
}

func runFields(_ context.Context, env *environment, args []string) error {
	fs := newFlagSet(env, "fields")
	entity := fs.String("entity", "", "Entity type name or alias")
	filterable := fs.Bool("filterable", false, "Only list filterable fields")
	sortable := fs.Bool("sortable", false, "Only list sortable fields")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *entity == "" {
		return errors.NewValidationError("entity", "-entity is required")
	}
	if *filterable && *sortable {
		return errors.NewValidationError("filterable", "-filterable and -sortable are mutually exclusive")
	}

	reg := kaseyaschema.Catalogue()
	var (
		fields []schema.Field
		err    error
	)
	switch {
	case *filterable:
		fields, err = reg.FilterableFields(*entity)
	case *sortable:
		fields, err = reg.SortableFields(*entity)
	default:
		fields, err = reg.Fields(*entity)
	}
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(env.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tTYPE\tFILTER\tSORT")
	for _, f := range fields {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, f.Type, mark(f.Filterable), mark(f.Sortable))
	}
	return tw.Flush()
}

func mark(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}

func runExport(_ context.Context, env *environment, args []string) error {
	fs := newFlagSet(env, "export")
	out := fs.String("o", "", "Output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return writeOutput(env, *out, func(w io.Writer) error {
		return processor.Export(kaseyaschema.Catalogue(), w)
	})
}

func runGen(_ context.Context, env *environment, args []string) error {
	fs := newFlagSet(env, "gen")
	in := fs.String("in", "", "Catalogue document or OpenAPI file to read")
	openapi := fs.Bool("openapi", false, "Read -in as an OpenAPI / Swagger document")
	pkg := fs.String("pkg", "", "Package name of the generated file")
	varName := fs.String("var", "", "Name of the generated slice (default Entities)")
	out := fs.String("o", "", "Output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errors.NewValidationError("in", "-in is required")
	}
	if *pkg == "" {
		return errors.NewValidationError("pkg", "-pkg is required")
	}

	f, err := os.Open(*in)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var reg *schema.Registry
	if *openapi {
		reg, err = processor.LoadOpenAPI(f)
	} else {
		reg, err = processor.Load(f)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", *in, err)
	}

	src, err := processor.Generate(reg, processor.GenerateOptions{
		Package: *pkg,
		VarName: *varName,
		Source:  filepath.Base(*in),
	})
	if err != nil {
		return err
	}
	env.log.Info().Str("input", *in).Int("entities", reg.Len()).Msg("generated catalogue")

	return writeOutput(env, *out, func(w io.Writer) error {
		_, err := w.Write(src)
		return err
	})
}

func runSnapshot(ctx context.Context, env *environment, args []string) error {
	if len(args) == 0 {
		return errors.NewValidationError("snapshot", "expected get or list")
	}
	action := args[0]
	if action != "get" && action != "list" {
		return errors.NewValidationError("snapshot", fmt.Sprintf("unknown action %q", action))
	}
	fs := newFlagSet(env, "snapshot "+action)
	entity := fs.String("entity", "", "Entity type name or alias")
	key := fs.String("key", "", "Sort key of the snapshot (get)")
	prefix := fs.String("prefix", "", "Sort key prefix (list)")
	limit := fs.Int("limit", 0, "Maximum number of snapshots (list)")
	desc := fs.Bool("desc", false, "List in descending key order")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if *entity == "" {
		return errors.NewValidationError("entity", "-entity is required")
	}
	if *limit < 0 || *limit > math.MaxInt32 {
		return errors.NewValidationError("limit", fmt.Sprintf("-limit must be between 0 and %d", math.MaxInt32))
	}
	name, err := kaseyaschema.Catalogue().Canonical(*entity)
	if err != nil {
		return err
	}

	if err := env.cfg.RequireSnapshotStore(); err != nil {
		return err
	}
	client, err := newSnapshotAPI(ctx, env.cfg)
	if err != nil {
		return err
	}
	table := ddb.NewTable(client, env.cfg.DynamoDB.Table, logger.WithComponent("ddb"))

	switch action {
	case "get":
		if *key == "" {
			return errors.NewValidationError("key", "-key is required")
		}
		item, err := table.Get(ctx, name, *key)
		if err != nil {
			return err
		}
		return writeJSON(env.stdout, item)
	case "list":
		params := &storagemodels.QueryParams{EntityType: name, KeyPrefix: *prefix}
		if *limit > 0 {
			params.Limit = aws.Int32(int32(*limit))
		}
		if *desc {
			params.ScanIndexForward = aws.Bool(false)
		}
		items, err := table.Query(ctx, params)
		if err != nil {
			return err
		}
		env.log.Debug().Str("entity_type", name).Int("count", len(items)).Msg("listed snapshots")
		return writeJSON(env.stdout, items)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func writeOutput(env *environment, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(env.stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	env.log.Info().Str("path", path).Msg("wrote file")
	return nil
}
