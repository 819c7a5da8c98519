package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/skillsync/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		"model_artifact.schema.json",
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestModelArtifactSchema_AcceptsShippedModel(t *testing.T) {
	model, err := os.ReadFile(filepath.Join("..", "models", "job_readiness_model.json"))
	require.NoError(t, err)

	err = schemas.ValidateBytes("model_artifact.schema.json", model)
	assert.NoError(t, err, "shipped model artifact should validate against its schema")
}
