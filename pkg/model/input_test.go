package model

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFromJson(t *testing.T) {
	writeInput := func(t *testing.T, content string) string {
		file := path.Join(t.TempDir(), "model.json")
		assert.Nil(t, os.WriteFile(file, []byte(content), 0o644))
		return file
	}

	t.Run("decodes a full model description", func(t *testing.T) {
		// Arrange
		file := writeInput(t, `{
			"parameters": [{"name": "nc", "value": 3}],
			"decisions": [
				{"name": "wa", "lo": 1, "hi": 3},
				{"name": "ratio", "type": "float", "lo": 0.5, "hi": 2.5}
			],
			"constraints": [{"left": "wa", "operator": "<=", "right": "nc"}],
			"objective": "satisfy"
		}`)

		// Act
		input, err := InputFromJson(file)
		assert.Nil(t, err)
		m, err := input.ToModel()

		// Assert
		assert.Nil(t, err)
		assert.Len(t, m.Parameters, 1)
		assert.Equal(t, TypeInt, m.Parameters[0].Type)
		assert.Equal(t, 3, m.Parameters[0].Value)
		assert.Len(t, m.Decisions, 2)
		assert.Equal(t, 1, m.Decisions[0].Lo)
		assert.Equal(t, 3, m.Decisions[0].Hi)
		assert.Equal(t, TypeFloat, m.Decisions[1].Type)
		assert.Equal(t, 0.5, m.Decisions[1].Lo)
		assert.Len(t, m.Constraints, 1)
		assert.Equal(t, OpLe, m.Constraints[0].Operator)
		assert.Equal(t, Satisfy, m.Objective)
	})

	t.Run("rejects constraints over unknown variables", func(t *testing.T) {
		file := writeInput(t, `{
			"decisions": [{"name": "wa", "lo": 1, "hi": 3}],
			"constraints": [{"left": "wa", "operator": "!=", "right": "nt"}]
		}`)

		input, err := InputFromJson(file)
		assert.Nil(t, err)
		_, err = input.ToModel()
		assert.NotNil(t, err)
	})

	t.Run("rejects extremizing objectives without an expression", func(t *testing.T) {
		file := writeInput(t, `{
			"decisions": [{"name": "wa", "lo": 1, "hi": 3}],
			"objective": "maximize"
		}`)

		input, err := InputFromJson(file)
		assert.Nil(t, err)
		_, err = input.ToModel()
		assert.NotNil(t, err)
	})

	t.Run("fails on unreadable files", func(t *testing.T) {
		_, err := InputFromJson(path.Join(t.TempDir(), "missing.json"))
		assert.NotNil(t, err)
	})
}
