/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kaseya

// NewScriptPrompt returns the answer to the prompt called name of a scheduled
// agent procedure. caption may be empty.
func NewScriptPrompt(name, value, caption string) *ScriptPrompts {
	return &ScriptPrompts{
		Caption: caption,
		Name:    name,
		Value:   value,
	}
}
