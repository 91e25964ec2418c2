package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidPayload = errors.New("invalid upstream payload")

// SearchRequest is the body of POST /activity.json/search. Optional filters are
// omitted rather than sent empty: the provider rejects empty strings and nulls.
type SearchRequest struct {
	Page     int      `json:"page"`
	PageSize int      `json:"pageSize"`
	Query    string   `json:"query,omitempty"`
	VendorID VendorID `json:"vendorId,omitzero"`
}

// VendorID is sent as a JSON number when it is written as a canonical integer
// ("1234"), otherwise as a string ("007", "+5", "acme").
type VendorID string

func (v VendorID) MarshalJSON() ([]byte, error) {
	raw := strings.TrimSpace(string(v))
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil && strconv.FormatInt(n, 10) == raw {
		return []byte(raw), nil
	}
	return json.Marshal(raw)
}

type SearchResponse struct {
	Total   Number
	Results []RawActivity
}

// DecodeSearchResponse accepts a bare array or an object carrying the list
// under "results" or "items". Any other valid JSON yields an empty response.
func DecodeSearchResponse(data []byte) (SearchResponse, error) {
	data = bytes.TrimSpace(data)
	if !json.Valid(data) {
		return SearchResponse{}, ErrInvalidPayload
	}

	if len(data) > 0 && data[0] == '[' {
		return SearchResponse{Results: decodeActivities(data)}, nil
	}

	var envelope struct {
		Results    json.RawMessage `json:"results"`
		Items      json.RawMessage `json:"items"`
		Total      Number          `json:"total"`
		TotalHits  Number          `json:"totalHits"`
		TotalCount Number          `json:"totalCount"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return SearchResponse{Results: []RawActivity{}}, nil
	}

	resp := SearchResponse{Results: []RawActivity{}}
	for _, list := range []json.RawMessage{envelope.Results, envelope.Items} {
		if isArray(list) {
			resp.Results = decodeActivities(list)
			break
		}
	}
	for _, total := range []Number{envelope.Total, envelope.TotalHits, envelope.TotalCount} {
		// out-of-range totals are dropped, not wrapped
		if total.Valid && total.Value >= 0 && total.Value < math.MaxInt64 {
			resp.Total = total
			break
		}
	}

	return resp, nil
}

func decodeActivities(data []byte) []RawActivity {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return []RawActivity{}
	}

	out := make([]RawActivity, 0, len(items))
	for _, item := range items {
		out = append(out, DecodeActivity(item))
	}
	return out
}

func isArray(data json.RawMessage) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '['
}
