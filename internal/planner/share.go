package planner

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// ShareParam is the URL query key carrying a share token.
const ShareParam = "plan"

// SharedPlan is the payload of a share token: one date and its items.
type SharedPlan struct {
	Date  string     `json:"date"`
	Items []PlanItem `json:"items"`
}

// EncodeShare serialises one date's plan into a URL-safe token.
func EncodeShare(p SharedPlan) (string, error) {
	if p.Items == nil {
		p.Items = []PlanItem{}
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding shared plan: %w", err)
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}

// DecodeShare reverses EncodeShare. Tokens in the standard base64 alphabet and
// unpadded tokens are accepted too. The payload must carry a string "date" and an
// array "items".
func DecodeShare(token string) (SharedPlan, error) {
	raw, err := decodeBase64(strings.TrimSpace(token))
	if err != nil {
		return SharedPlan{}, fmt.Errorf("%w: %v", ErrInvalidShareToken, err)
	}

	var shape map[string]json.RawMessage
	if err := json.Unmarshal(raw, &shape); err != nil {
		return SharedPlan{}, fmt.Errorf("%w: %v", ErrInvalidShareToken, err)
	}
	if !isJSONKind(shape["date"], '"') {
		return SharedPlan{}, fmt.Errorf("%w: date must be a string", ErrInvalidShareToken)
	}
	if !isJSONKind(shape["items"], '[') {
		return SharedPlan{}, fmt.Errorf("%w: items must be an array", ErrInvalidShareToken)
	}

	var out SharedPlan
	if err := json.Unmarshal(raw, &out); err != nil {
		return SharedPlan{}, fmt.Errorf("%w: %v", ErrInvalidShareToken, err)
	}
	if out.Items == nil {
		out.Items = []PlanItem{}
	}
	return out, nil
}

func decodeBase64(token string) ([]byte, error) {
	if token == "" {
		return nil, fmt.Errorf("empty token")
	}
	var lastErr error
	for _, enc := range []*base64.Encoding{
		base64.URLEncoding, base64.StdEncoding, base64.RawURLEncoding, base64.RawStdEncoding,
	} {
		raw, err := enc.DecodeString(token)
		if err == nil {
			return raw, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func isJSONKind(raw json.RawMessage, first byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == first
}
