package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name    string `form:"name" binding:"notblank"`
	Secret  string `form:"secret" binding:"notblank"`
	Confirm string `form:"confirm" binding:"notblank,eqfield=Secret"`
}

type unusual struct {
	Code string `form:"code" binding:"omitempty,len=3"`
}

func TestStruct_FieldMessages(t *testing.T) {
	err := Struct(&sample{Name: "   ", Secret: "a", Confirm: "b"})
	details := ToDetails(err)

	assert.Equal(t, map[string]string{
		"name":    "This field is required.",
		"confirm": "must match secret",
	}, details)
}

func TestStruct_OtherRulesFallBackToGenericMessage(t *testing.T) {
	details := ToDetails(Struct(&unusual{Code: "toolong"}))
	assert.Equal(t, map[string]string{"code": "validation failed for 'len' with parameter '3'"}, details)
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(&sample{Name: "x", Secret: "s", Confirm: "s"}))
	assert.Nil(t, ToDetails(nil))
}
