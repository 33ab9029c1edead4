package table

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNewColumns(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   []string
	}{
		{
			"domain labels only",
			[]string{"alto", "bajo"},
			[]string{"nombre_plan", "alto", "bajo", "alto_ambulatoria", "bajo_ambulatorio"},
		},
		{
			"extra template label appended",
			[]string{"alto", "vigencia"},
			[]string{"nombre_plan", "alto", "bajo", "alto_ambulatoria", "bajo_ambulatorio", "vigencia"},
		},
		{
			"empty template still has domain columns",
			nil,
			[]string{"nombre_plan", "alto", "bajo", "alto_ambulatoria", "bajo_ambulatorio"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.labels).Columns(); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Columns() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpsertReplacesRow(t *testing.T) {
	tbl := New([]string{"alto", "bajo"})
	tbl.Upsert("PPS001", map[string]string{"alto": "5000", "bajo": "2000"})
	tbl.Upsert("PPS002", map[string]string{"alto": "7000"})
	tbl.Upsert("PPS001", map[string]string{"alto": "5500", "bajo": "2500"})

	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	if keys := tbl.Keys(); !reflect.DeepEqual(keys, []string{"PPS001", "PPS002"}) {
		t.Fatalf("Keys() = %v: replaced row lost its position", keys)
	}
	row, _ := tbl.Row("PPS001")
	if row["alto"] != "5500" || row["bajo"] != "2500" {
		t.Fatalf("Row(PPS001) = %v, want replaced values", row)
	}
}

func TestUpsertFillsMissingFields(t *testing.T) {
	tbl := New([]string{"alto"})
	tbl.Upsert("PPS001", map[string]string{"alto": "5000", "desconocido": "x"})
	row, _ := tbl.Row("PPS001")
	if row["bajo"] != "" || row["alto_ambulatoria"] != "" {
		t.Fatalf("missing domain fields not empty: %v", row)
	}
	if _, ok := row["desconocido"]; ok {
		t.Fatal("field outside column set was kept")
	}
	if row["nombre_plan"] != "PPS001" {
		t.Fatalf("key column = %q, want PPS001", row["nombre_plan"])
	}
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan_de_salud.csv")
	labels := []string{"alto", "bajo"}

	tbl, err := Load(path, labels)
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Len() != 0 {
		t.Fatalf("missing file: Len() = %d, want 0", tbl.Len())
	}

	tbl.Upsert("PPS001", map[string]string{"alto": "5000", "bajo": "2000"})
	tbl.Upsert("PPS002", map[string]string{"alto": "texto, con coma", "bajo": ""})
	if err := tbl.Save(path); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path, labels)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got.Keys(), tbl.Keys()) {
		t.Fatalf("Keys() = %v, want %v", got.Keys(), tbl.Keys())
	}
	for _, key := range tbl.Keys() {
		want, _ := tbl.Row(key)
		row, _ := got.Row(key)
		if !reflect.DeepEqual(row, want) {
			t.Fatalf("Row(%s) = %v, want %v", key, row, want)
		}
	}
}

func TestCSVUpsertIdempotence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan_de_salud.csv")
	labels := []string{"alto", "bajo"}

	// simulate re-processing the same document twice
	for i := 0; i < 2; i++ {
		tbl, err := Load(path, labels)
		if err != nil {
			t.Fatal(err)
		}
		tbl.Upsert("PPS001", map[string]string{"alto": "5000", "bajo": "2000"})
		if err := tbl.Save(path); err != nil {
			t.Fatal(err)
		}
	}

	got, err := Load(path, labels)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 {
		t.Fatalf("re-processing duplicated the row: Len() = %d", got.Len())
	}
	row, _ := got.Row("PPS001")
	if row["alto"] != "5000" || row["bajo"] != "2000" {
		t.Fatalf("Row(PPS001) = %v", row)
	}
}

func TestLoadDropsUnknownColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan_de_salud.csv")
	body := "nombre_plan,alto,obsoleta\nPPS001,5000,x\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path, []string{"alto"})
	if err != nil {
		t.Fatal(err)
	}
	row, ok := got.Row("PPS001")
	if !ok {
		t.Fatal("row not loaded")
	}
	if row["alto"] != "5000" {
		t.Fatalf("alto = %q", row["alto"])
	}
	if _, kept := row["obsoleta"]; kept {
		t.Fatal("obsolete column survived the reload")
	}
}

func TestXLSXRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan_de_salud.xlsx")
	labels := []string{"alto", "bajo"}

	tbl := New(labels)
	tbl.Upsert("PPS001", map[string]string{"alto": "5000", "bajo": "2000"})
	if err := tbl.Save(path); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path, labels)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", got.Len())
	}
	row, _ := got.Row("PPS001")
	if row["alto"] != "5000" || row["bajo"] != "2000" {
		t.Fatalf("Row(PPS001) = %v", row)
	}
}
