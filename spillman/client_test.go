package spillman

import (
	"strings"
	"testing"
)

func TestBuildQuery(t *testing.T) {
	q := buildQuery("rlmain", "logdate", Window{Start: "04/30/2023 23:59:59", End: "05/01/2023 06:00:00"})
	for _, want := range []string{
		`<PublicSafetyEnvelope version="1.0">`,
		"<Query>",
		"<rlmain>",
		`<logdate search_type="greater_than">04/30/2023 23:59:59</logdate>`,
		`<logdate search_type="less_than">05/01/2023 06:00:00</logdate>`,
	} {
		if !strings.Contains(q, want) {
			t.Fatalf("query missing %q:\n%v", want, q)
		}
	}
}

func TestParseResponseMultipleRows(t *testing.T) {
	body := []byte(`<PublicSafetyEnvelope><PublicSafety><Response>
		<rlmain><callid>1</callid><unit>A1</unit></rlmain>
		<rlmain><callid>2</callid></rlmain>
	</Response></PublicSafety></PublicSafetyEnvelope>`)
	records, err := parseResponse("rlmain", body)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %v", len(records))
	}
	if records[0]["callid"] != "1" || records[0]["unit"] != "A1" {
		t.Fatalf("unexpected first record %v", records[0])
	}
	if _, ok := records[1]["unit"]; ok {
		t.Fatal("absent fields must stay absent, not defaulted by the client")
	}
}

func TestParseResponseSingleRow(t *testing.T) {
	body := []byte(`<PublicSafetyEnvelope><PublicSafety><Response>
		<cdmain><callid>99</callid></cdmain>
	</Response></PublicSafety></PublicSafetyEnvelope>`)
	records, err := parseResponse("cdmain", body)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0]["callid"] != "99" {
		t.Fatalf("unexpected records %v", records)
	}
}

func TestParseResponseZeroRowsIsNotAnError(t *testing.T) {
	body := []byte(`<PublicSafetyEnvelope><PublicSafety><Response/></PublicSafety></PublicSafetyEnvelope>`)
	records, err := parseResponse("cdmain", body)
	if err != nil {
		t.Fatal("an absent result collection is zero rows, not an error")
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %v", records)
	}
}

func TestParseResponseMalformedXML(t *testing.T) {
	if _, err := parseResponse("cdmain", []byte("not xml at <all")); err == nil {
		t.Fatal("expected a query error for malformed XML")
	}
}
