package gobigquery

import (
	"encoding/json"
	"testing"
)

func TestParseObjectRejectsNonObjects(t *testing.T) {
	for _, payload := range []string{`[]`, `"text"`, `42`, `{"trailing":`} {
		_, err := parseObject([]byte(payload))
		assertNotNilF(t, err, payload)
		var bqErr *BigQueryError
		assertErrorsAsF(t, err, &bqErr)
		assertEqualE(t, bqErr.Number, ErrCodeMalformedPayload)
	}
}

func TestGetOptional(t *testing.T) {
	obj, err := parseObject([]byte(`{"name":"orders","count":3}`))
	assertNilF(t, err)

	name := "unchanged"
	assertNilE(t, getOptional(obj, "missing", &name))
	assertEqualE(t, name, "unchanged")

	assertNilE(t, getOptional(obj, "name", &name))
	assertEqualE(t, name, "orders")

	// present but wrong shape is an error, unlike absence
	var count string
	assertNotNilE(t, getOptional(obj, "count", &count))
}

func TestInt64StringRoundTrip(t *testing.T) {
	data, err := json.Marshal(Int64String(-77))
	assertNilF(t, err)
	assertEqualE(t, string(data), `"-77"`)

	var out Int64String
	assertNilF(t, json.Unmarshal(data, &out))
	assertEqualE(t, out, Int64String(-77))
}

func TestInt64StringAcceptsBareNumber(t *testing.T) {
	var out Int64String
	assertNilF(t, json.Unmarshal([]byte(`123`), &out))
	assertEqualE(t, out, Int64String(123))

	assertNotNilE(t, json.Unmarshal([]byte(`"abc"`), &out))
	assertNotNilE(t, json.Unmarshal([]byte(`false`), &out))
}

func TestUint64StringRoundTrip(t *testing.T) {
	// above int64 range
	data, err := json.Marshal(Uint64String(18446744073709551615))
	assertNilF(t, err)
	assertEqualE(t, string(data), `"18446744073709551615"`)

	var out Uint64String
	assertNilF(t, json.Unmarshal(data, &out))
	assertEqualE(t, out, Uint64String(18446744073709551615))

	assertNotNilE(t, json.Unmarshal([]byte(`"-1"`), &out))
}
