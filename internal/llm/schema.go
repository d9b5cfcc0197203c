package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// transactionArraySchema is compiled once at package init. The reply shape is
// fixed, so recompiling per decode would only burn cycles.
var transactionArraySchema = mustCompileTransactionArraySchema()

// The reply must be a bare array; every element needs all three fields with
// the right types. additionalProperties stays open so an element carrying
// extra fields still validates - extras are simply ignored downstream.
func transactionArraySchemaMap() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"date":        map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
				"description": map[string]any{"type": "string"},
				"amount":      map[string]any{"type": "number"},
			},
			"required": []string{"date", "description", "amount"},
		},
	}
}

func mustCompileTransactionArraySchema() *jsonschema.Schema {
	b, err := json.Marshal(transactionArraySchemaMap())
	if err != nil {
		panic(fmt.Sprintf("marshal transaction schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("transactions.json", bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("add transaction schema: %v", err))
	}
	schema, err := compiler.Compile("transactions.json")
	if err != nil {
		panic(fmt.Sprintf("compile transaction schema: %v", err))
	}
	return schema
}
