package card

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestFieldsWithDefaults(t *testing.T) {
	got := Fields{Title: "Algorithms", Description: strPtr("")}.WithDefaults()
	assert.Equal(t, DefaultStatus, got.Status)
	assert.Nil(t, got.Description)

	kept := Fields{Status: "ARCHIVED", Description: strPtr("graphs")}.WithDefaults()
	assert.Equal(t, "ARCHIVED", kept.Status)
	require.NotNil(t, kept.Description)
	assert.Equal(t, "graphs", *kept.Description)
}

func TestCreateCardPayloadRequiresFields(t *testing.T) {
	err := (&CreateCardPayload{Title: "Algorithms"}).Validate()

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	var fields []string
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	assert.ElementsMatch(t, []string{"module_name", "module_code"}, fields)
}

func TestCreateCardPayloadValid(t *testing.T) {
	p := &CreateCardPayload{Title: "Algorithms", ModuleName: "Computer Science", ModuleCode: "CS201"}
	require.NoError(t, p.Validate())

	f := p.Fields()
	assert.Equal(t, "CS201", f.ModuleCode)
	assert.Empty(t, f.Status)
}

// Any integer id is accepted here; ids that match no row are a lookup
// miss, reported as not found by the repository.
func TestIDPayloadsAcceptAnyInteger(t *testing.T) {
	assert.NoError(t, (&GetCardPayload{}).Validate())
	assert.NoError(t, (&DeleteCardPayload{ID: -1}).Validate())
	assert.NoError(t, (&UpdateCardPayload{ID: 0, Title: "a", ModuleName: "b", ModuleCode: "c"}).Validate())
	assert.Error(t, (&UpdateCardPayload{ID: 4, Title: "a"}).Validate())
}
