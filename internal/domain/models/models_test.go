package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRequestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   SearchRequest
		want SearchRequest
	}{
		{name: "defaults", in: SearchRequest{}, want: SearchRequest{Page: 1, PageSize: 20}},
		{name: "negative page", in: SearchRequest{Page: -4, PageSize: 10}, want: SearchRequest{Page: 1, PageSize: 10}},
		{name: "negative page size", in: SearchRequest{Page: 2, PageSize: -1}, want: SearchRequest{Page: 2, PageSize: 1}},
		{name: "page size capped", in: SearchRequest{Page: 3, PageSize: 500}, want: SearchRequest{Page: 3, PageSize: 50}},
		{name: "query trimmed", in: SearchRequest{Query: "  whale  "}, want: SearchRequest{Page: 1, PageSize: 20, Query: "whale"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalize())
		})
	}
}

func TestIDMarshal(t *testing.T) {
	tests := []struct {
		id   ID
		want string
	}{
		{id: NumericID("42"), want: `42`},
		{id: StringID("abc-1"), want: `"abc-1"`},
		{id: StringID(`quo"te`), want: `"quo\"te"`},
		{id: ID{}, want: `null`},
	}

	for _, tc := range tests {
		got, err := json.Marshal(tc.id)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(got))
	}
}

func TestIDUnmarshal(t *testing.T) {
	var id ID

	require.NoError(t, json.Unmarshal([]byte(`17`), &id))
	assert.Equal(t, NumericID("17"), id)

	require.NoError(t, json.Unmarshal([]byte(`"17"`), &id))
	assert.Equal(t, StringID("17"), id)

	require.NoError(t, json.Unmarshal([]byte(`{"x":1}`), &id))
	assert.True(t, id.IsZero())
}

func TestTourJSON_OmitsMissingID(t *testing.T) {
	body, err := json.Marshal(Tour{Title: UntitledTour, Currency: DefaultCurrency})
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &fields))

	assert.NotContains(t, fields, "id")
	assert.JSONEq(t, `null`, string(fields["cover"]))
	assert.JSONEq(t, `"USD"`, string(fields["currency"]))
}

func TestTourDetailJSON_EmbedsTourAndRaw(t *testing.T) {
	detail := TourDetail{
		Tour: Tour{ID: NumericID("7"), Title: "Reef", Currency: DefaultCurrency},
		Raw:  json.RawMessage(`{"id":7,"extra":"kept"}`),
	}

	body, err := json.Marshal(detail)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &fields))

	assert.JSONEq(t, `7`, string(fields["id"]))
	assert.JSONEq(t, `"Reef"`, string(fields["title"]))
	assert.JSONEq(t, `{"id":7,"extra":"kept"}`, string(fields["raw"]))
}
