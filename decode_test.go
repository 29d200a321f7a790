package atext

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/pierrec/lz4/v4"
)

// buildContainer assembles a synthetic .atext file: BOM, header JSON, null
// separator, LZ4-compressed body.
func buildContainer(t *testing.T, headerJSON, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write(utf8BOM[:])
	buf.WriteString(headerJSON)
	buf.WriteByte(0x00)
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write([]byte(body)); err != nil {
		t.Fatalf("lz4 write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("lz4 close: %v", err)
	}
	return buf.Bytes()
}

const sampleHeader = `{"0":"abc-123","1":true}`

func TestDecode_SpecimenContainer(t *testing.T) {
	body := `[{"99":1,"2":"Folder","13":[{"1":["mfg"],"3":"t","4":"Best regards","12":1000}]}]`
	raw := buildContainer(t, sampleHeader, body)

	arc, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if arc.Header.ID != "abc-123" || arc.Header.Flag != true {
		t.Fatalf("header mismatch: %#v", arc.Header)
	}
	want := []Snippet{{
		Triggers:   []string{"mfg"},
		Kind:       KindText,
		Body:       "Best regards",
		CreatedAt:  1000,
		ModifiedAt: 1000, // defaults to CreatedAt when "13" is absent
		Group:      []string{"Folder"},
	}}
	if !reflect.DeepEqual(arc.Snippets, want) {
		t.Fatalf("snippets mismatch\nwant: %#v\ngot:  %#v", want, arc.Snippets)
	}
}

func TestDecode_RoundTripNoFieldLoss(t *testing.T) {
	body := `[
		{"99":1,"2":"Mail","13":[
			{"0":"u-1","1":["sig","sig2"],"2":"Signature","3":"t","4":"Cheers,\nAda","5":"<p>Cheers</p>","8":"cmd+shift+s","10":["work","mail"],"12":100,"13":200}
		]},
		{"0":"u-2","1":["pic"],"3":"p","12":50}
	]`
	raw := buildContainer(t, sampleHeader, body)

	arc, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []Snippet{
		{
			ID:         "u-1",
			Triggers:   []string{"sig", "sig2"},
			Label:      "Signature",
			Kind:       KindText,
			Body:       "Cheers,\nAda",
			RichBody:   "<p>Cheers</p>",
			Hotkey:     "cmd+shift+s",
			Tags:       []string{"work", "mail"},
			CreatedAt:  100,
			ModifiedAt: 200,
			Group:      []string{"Mail"},
		},
		{
			ID:         "u-2",
			Triggers:   []string{"pic"},
			Kind:       KindPicture,
			CreatedAt:  50,
			ModifiedAt: 50,
			Group:      nil,
		},
	}
	if !reflect.DeepEqual(arc.Snippets, want) {
		t.Fatalf("snippets mismatch\nwant: %#v\ngot:  %#v", want, arc.Snippets)
	}
}

func TestDecode_ContainerLimit(t *testing.T) {
	raw := buildContainer(t, sampleHeader, `[]`)
	_, err := Decode(bytes.NewReader(raw), WithReadLimits(Limits{MaxContainerLen: 8}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("want ErrLimitExceeded, got %v", err)
	}
}

func TestDecode_UncompressedLimit(t *testing.T) {
	body := `[{"4":"` + string(bytes.Repeat([]byte("a"), 1024)) + `"}]`
	raw := buildContainer(t, sampleHeader, body)
	_, err := Decode(bytes.NewReader(raw), WithReadLimits(Limits{MaxUncompressed: 16}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("want ErrLimitExceeded, got %v", err)
	}
}

func TestDecode_TruncatedFrame(t *testing.T) {
	body := `[{"4":"` + string(bytes.Repeat([]byte("abc"), 512)) + `"}]`
	raw := buildContainer(t, sampleHeader, body)
	// Chop the back half of the compressed frame off.
	cut := raw[:len(raw)-len(raw)/3]
	_, err := Decode(bytes.NewReader(cut))
	if !errors.Is(err, ErrDecompressionFailed) {
		t.Fatalf("want ErrDecompressionFailed, got %v", err)
	}
}

func TestDecode_SchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"top level object", `{"0":"x"}`},
		{"top level scalar", `42`},
		{"element not an object", `[1,2,3]`},
		{"not JSON at all", `best regards`},
		{"group without children", `[{"99":1,"2":"G"}]`},
		{"group children not array", `[{"99":1,"2":"G","13":1234}]`},
		{"group children null", `[{"99":1,"2":"G","13":null}]`},
		{"snippet with child array", `[{"2":"S","13":[{"4":"x"}]}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := buildContainer(t, sampleHeader, tc.body)
			_, err := Decode(bytes.NewReader(raw))
			if !errors.Is(err, ErrInvalidSchema) {
				t.Fatalf("want ErrInvalidSchema, got %v", err)
			}
		})
	}
}

func TestDecode_HeaderErrors(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"not JSON", `garbage`},
		{"missing id key", `{"1":true}`},
		{"missing flag key", `{"0":"abc-123"}`},
		{"flag not a bool", `{"0":"abc-123","1":"yes"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := buildContainer(t, tc.header, `[]`)
			_, err := Decode(bytes.NewReader(raw))
			if !errors.Is(err, ErrCorruptHeader) {
				t.Fatalf("want ErrCorruptHeader, got %v", err)
			}
		})
	}
}

func TestDecode_EmptyTree(t *testing.T) {
	raw := buildContainer(t, sampleHeader, `[]`)
	arc, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(arc.Snippets) != 0 {
		t.Fatalf("want no snippets, got %d", len(arc.Snippets))
	}
}
