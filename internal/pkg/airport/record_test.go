package airport

import "testing"

func TestRecord_Validate(t *testing.T) {
	validateRecord := func(record Record, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			err := record.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}
		}
	}

	valid := Record{IATA: "GRU", City: "Sao Paulo", State: "SP", Lat: -23.432075, Lon: -46.469511}

	t.Run("valid_record", validateRecord(valid, false))
	t.Run("no_state_is_valid", validateRecord(Record{IATA: "JFK", City: "New York", Lat: 40.641766, Lon: -73.780968}, false))
	t.Run("short_code", validateRecord(Record{IATA: "GR", City: "Sao Paulo", Lat: 0, Lon: 0}, true))
	t.Run("lowercase_code", validateRecord(Record{IATA: "gru", City: "Sao Paulo", Lat: 0, Lon: 0}, true))
	t.Run("numeric_code", validateRecord(Record{IATA: "GR1", City: "Sao Paulo", Lat: 0, Lon: 0}, true))
	t.Run("empty_city", validateRecord(Record{IATA: "GRU", City: "  ", Lat: 0, Lon: 0}, true))
	t.Run("latitude_out_of_range", validateRecord(Record{IATA: "GRU", City: "Sao Paulo", Lat: 91, Lon: 0}, true))
	t.Run("longitude_out_of_range", validateRecord(Record{IATA: "GRU", City: "Sao Paulo", Lat: 0, Lon: -181}, true))
}

func TestNormalizeIATA(t *testing.T) {
	cases := map[string]string{
		"gru":   "GRU",
		" GRU ": "GRU",
		"jfk\n": "JFK",
		"GIG":   "GIG",
	}

	for in, want := range cases {
		if got := NormalizeIATA(in); got != want {
			t.Fatalf("NormalizeIATA(%q) = %q, want %q", in, got, want)
		}
	}
}
