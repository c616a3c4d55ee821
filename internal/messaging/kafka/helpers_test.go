package kafka_test

import (
	"encoding/json"
	"testing"
)

func mustField(t *testing.T, payload []byte, key string) string {
	t.Helper()
	var m map[string]json.RawMessage
	if err := json.Unmarshal(payload, &m); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	return string(m[key])
}
