package inkwell

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type optionTestModel string

func (m optionTestModel) String() string     { return string(m) }
func (m optionTestModel) Provider() Provider { return ProviderAnthropic }

func TestApplyOptions(t *testing.T) {
	o := ApplyOptions(
		WithModel(optionTestModel("test-model")),
		WithMaxTokens(2048),
		WithTemperature(0.3),
	)

	assert.Equal(t, "test-model", o.Model.String())
	assert.Equal(t, 2048, o.MaxTokens)
	require.NotNil(t, o.Temperature)
	assert.Equal(t, 0.3, *o.Temperature)
	assert.Nil(t, o.ResponseSchema)
}

func TestApplyOptionsDefaults(t *testing.T) {
	o := ApplyOptions()

	assert.Nil(t, o.Model)
	assert.Zero(t, o.MaxTokens)
	assert.Nil(t, o.Temperature)
	assert.Nil(t, o.ResponseSchema)
}

func TestWithResponseSchema(t *testing.T) {
	rs := ResponseSchema{
		Name:   "plan",
		Schema: json.RawMessage(`{"type":"object"}`),
	}

	o := ApplyOptions(WithResponseSchema(rs))

	require.NotNil(t, o.ResponseSchema)
	assert.Equal(t, "plan", o.ResponseSchema.Name)
	assert.JSONEq(t, `{"type":"object"}`, string(o.ResponseSchema.Schema))
}

func TestWithTemperatureZero(t *testing.T) {
	o := ApplyOptions(WithTemperature(0))

	require.NotNil(t, o.Temperature)
	assert.Equal(t, 0.0, *o.Temperature)
}

func TestLaterOptionWins(t *testing.T) {
	o := ApplyOptions(
		WithMaxTokens(100),
		WithMaxTokens(500),
	)

	assert.Equal(t, 500, o.MaxTokens)
}
