package schemavalidation

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"palinview/internal/examples"
	"palinview/internal/logging"
	"palinview/internal/report"
	"palinview/internal/session"
)

func TestReportFixture(t *testing.T) {
	root := repoRoot(t)
	schema := compileSchema(t, filepath.Join(root, "docs", "schema", "report-v1.schema.json"))

	data, err := os.ReadFile(filepath.Join(root, "docs", "fixtures", "report-v1.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	validate(t, schema, data)
}

func TestGeneratedReports(t *testing.T) {
	schema := compileSchema(t, filepath.Join(repoRoot(t), "docs", "schema", "report-v1.schema.json"))

	inputs := []string{"", "   ", "a", "Taco cat", "Hello World", "Route 66", "Ça va? Ünïcödé 🎉"}
	inputs = append(inputs, examples.DefaultPhrases()...)

	s := session.New(logging.Discard())
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			var buf bytes.Buffer
			if err := report.Write(&buf, report.FromSnapshot(s.SetInput(in))); err != nil {
				t.Fatalf("write report: %v", err)
			}
			validate(t, schema, buf.Bytes())
		})
	}
}

func compileSchema(t *testing.T, schemaPath string) *jsonschema.Schema {
	t.Helper()

	schemaData, err := os.ReadFile(schemaPath)
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaPath, bytes.NewReader(schemaData)); err != nil {
		t.Fatalf("add schema resource: %v", err)
	}
	schema, err := compiler.Compile(schemaPath)
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}
	return schema
}

func validate(t *testing.T, schema *jsonschema.Schema, data []byte) {
	t.Helper()

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		t.Fatalf("unmarshal instance: %v", err)
	}
	if err := schema.Validate(instance); err != nil {
		t.Fatalf("schema validation failed: %v\n%s", err, data)
	}
}

func repoRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to resolve caller path")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
