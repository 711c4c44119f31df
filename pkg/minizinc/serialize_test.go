package minizinc

import (
	"strings"
	"testing"

	"github.com/limaJavier/mznbridge/pkg/model"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

// australiaModel builds the classic map-coloring instance: seven states, three
// colors, adjacent states must differ.
func australiaModel(t *testing.T) *model.Model {
	m := model.NewModel()

	nc, err := model.NewParameter("nc", 3)
	assert.Nil(t, err)
	assert.Nil(t, m.AddParameter(nc))

	for _, state := range []string{"wa", "nt", "sa", "q", "nsw", "v", "t"} {
		assert.Nil(t, m.AddDecision(model.NewDecision(state, 1, 3)))
	}

	adjacent := [][2]string{
		{"wa", "nt"}, {"wa", "sa"}, {"nt", "sa"}, {"nt", "q"}, {"sa", "q"},
		{"sa", "nsw"}, {"sa", "v"}, {"q", "nsw"}, {"nsw", "v"},
	}
	for _, pair := range adjacent {
		left, ok := m.Lookup(pair[0])
		assert.True(t, ok)
		right, ok := m.Lookup(pair[1])
		assert.True(t, ok)

		constraint, err := model.NewConstraint(left, model.OpNe, right)
		assert.Nil(t, err)
		assert.Nil(t, m.AddConstraint(constraint))
	}

	return m
}

func TestSerializeOrdering(t *testing.T) {
	// Arrange
	m := model.NewModel()
	nc, err := model.NewParameter("nc", 3)
	assert.Nil(t, err)
	assert.Nil(t, m.AddParameter(nc))
	wa := model.NewDecision("wa", 1, 3)
	nt := model.NewDecision("nt", 1, 3)
	assert.Nil(t, m.AddDecision(wa))
	assert.Nil(t, m.AddDecision(nt))
	constraint, err := model.NewConstraint(wa, model.OpNe, nt)
	assert.Nil(t, err)
	assert.Nil(t, m.AddConstraint(constraint))

	// Act
	source := Serialize(m.Parameters, m.Decisions, m.Constraints)

	// Assert
	expected := "int: nc = 3;\n" +
		"var 1..3: wa;\n" +
		"var 1..3: nt;\n" +
		"constraint wa != nt;\n"
	assert.Equal(t, expected, source)

	// Serialization is a pure function of input ordering
	assert.Equal(t, source, Serialize(m.Parameters, m.Decisions, m.Constraints))
}

func TestSerializeLiterals(t *testing.T) {
	t.Run("reproduces float domains exactly", func(t *testing.T) {
		ratio := model.NewDecisionFloat("ratio", 0.1, 2.55)
		assert.Equal(t, "var 0.1..2.55: ratio;\n", Serialize(nil, []*model.Variable{ratio}, nil))
	})

	t.Run("renders every parameter type", func(t *testing.T) {
		cases := []struct {
			name     string
			value    any
			expected string
		}{
			{"rate", 10.125, "float: rate = 10.125;\n"},
			{"strict", true, "bool: strict = true;\n"},
			{"label", "north", "string: label = \"north\";\n"},
		}
		for _, testCase := range cases {
			parameter, err := model.NewParameter(testCase.name, testCase.value)
			assert.Nil(t, err)
			assert.Equal(t, testCase.expected, Serialize([]*model.Variable{parameter}, nil, nil))
		}
	})
}

func TestSerializeEmptySections(t *testing.T) {
	assert.Equal(t, "", Serialize(nil, nil, nil))

	wa := model.NewDecision("wa", 1, 3)
	assert.Equal(t, "var 1..3: wa;\n", Serialize(nil, []*model.Variable{wa}, nil))
}

func TestSerializeAustralia(t *testing.T) {
	// Arrange
	m := australiaModel(t)

	// Act
	source := Serialize(m.Parameters, m.Decisions, m.Constraints)

	// Assert
	lines := lo.Filter(strings.Split(source, "\n"), func(line string, _ int) bool {
		return line != ""
	})
	assert.Len(t, lines, 17)
	assert.Equal(t, "int: nc = 3;", lines[0])
	for _, line := range lines[1:8] {
		assert.True(t, strings.HasPrefix(line, "var 1..3: "))
	}
	for _, line := range lines[8:] {
		assert.True(t, strings.HasPrefix(line, "constraint "))
	}
	assert.Equal(t, "constraint wa != nt;", lines[8])
	assert.Equal(t, "constraint nsw != v;", lines[16])
}
