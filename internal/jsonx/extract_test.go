package jsonx

import (
	"reflect"
	"testing"
)

const summaryDoc = `{
  "type": "standard",
  "title": "Albert Einstein",
  "displaytitle": "<span>Albert Einstein</span>",
  "pageid": 736,
  "thumbnail": {
    "source": "https://upload.wikimedia.org/thumb/Einstein_1921.jpg",
    "width": 241,
    "height": 320
  },
  "originalimage": {
    "source": "https://upload.wikimedia.org/Einstein_1921.jpg",
    "width": 2523,
    "height": 3353
  },
  "description": "German-born physicist (1879–1955)",
  "extract": "Albert Einstein was a theoretical physicist, widely held to be one of the greatest scientists of all time."
}`

func TestStringField(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		key    string
		want   string
		wantOK bool
	}{
		{"top-level field", summaryDoc, "title", "Albert Einstein", true},
		{"field with escapes", `{"caption":"He said \"hello\"\nworld"}`, "caption", "He said \"hello\"\nworld", true},
		{"escaped backslash", `{"path":"a\\b"}`, "path", `a\b`, true},
		{"absent key", summaryDoc, "nope", "", false},
		{"non-string value", `{"pageid": 736}`, "pageid", "", false},
		{"whitespace around colon", `{"title"  :  "x"}`, "title", "x", true},
		{"empty value", `{"title":""}`, "title", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StringField(tt.doc, tt.key)
			if ok != tt.wantOK {
				t.Fatalf("StringField ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("StringField = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIntField(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		key    string
		want   int64
		wantOK bool
	}{
		{"positive", summaryDoc, "pageid", 736, true},
		{"negative", `{"offset": -12}`, "offset", -12, true},
		{"absent", summaryDoc, "revision", 0, false},
		{"string value", `{"pageid":"736"}`, "pageid", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IntField(tt.doc, tt.key)
			if ok != tt.wantOK {
				t.Fatalf("IntField ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("IntField = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestObject(t *testing.T) {
	obj, ok := Object(summaryDoc, "thumbnail")
	if !ok {
		t.Fatal("Expected thumbnail object")
	}

	src, ok := StringField(obj, "source")
	if !ok || src != "https://upload.wikimedia.org/thumb/Einstein_1921.jpg" {
		t.Errorf("Unexpected nested source: %q", src)
	}
	w, ok := IntField(obj, "width")
	if !ok || w != 241 {
		t.Errorf("Unexpected nested width: %d", w)
	}

	if _, ok := Object(summaryDoc, "missing"); ok {
		t.Error("Expected no object for missing key")
	}
}

func TestObjectWithNestedBraces(t *testing.T) {
	doc := `{"outer": {"inner": {"a": 1}, "text": "has { brace"}, "after": 2}`

	obj, ok := Object(doc, "outer")
	if !ok {
		t.Fatal("Expected outer object")
	}
	if obj != `{"inner": {"a": 1}, "text": "has { brace"}` {
		t.Errorf("Unexpected object body: %s", obj)
	}
}

func TestArray(t *testing.T) {
	doc := `{"items": [{"a":1},{"b":"]"}], "count": 2}`

	arr, ok := Array(doc, "items")
	if !ok {
		t.Fatal("Expected items array")
	}
	if arr != `[{"a":1},{"b":"]"}]` {
		t.Errorf("Unexpected array body: %s", arr)
	}

	if _, ok := Array(doc, "none"); ok {
		t.Error("Expected no array for missing key")
	}
}

func TestSplitObjects(t *testing.T) {
	tests := []struct {
		name string
		arr  string
		want []string
	}{
		{
			name: "flat objects",
			arr:  `[{"a":1},{"b":2}]`,
			want: []string{`{"a":1}`, `{"b":2}`},
		},
		{
			name: "nested objects stay whole",
			arr:  `[{"caption":{"text":"x"}},{"caption":{"text":"y"}}]`,
			want: []string{`{"caption":{"text":"x"}}`, `{"caption":{"text":"y"}}`},
		},
		{
			name: "braces inside strings ignored",
			arr:  `[{"t":"a } b"},{"t":"c { d"}]`,
			want: []string{`{"t":"a } b"}`, `{"t":"c { d"}`},
		},
		{
			name: "escaped quotes inside strings",
			arr:  `[{"t":"say \"}\""},{"t":"z"}]`,
			want: []string{`{"t":"say \"}\""}`, `{"t":"z"}`},
		},
		{
			name: "without surrounding brackets",
			arr:  `{"a":1}, {"b":2}`,
			want: []string{`{"a":1}`, `{"b":2}`},
		},
		{
			name: "empty array",
			arr:  `[]`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitObjects(tt.arr)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitObjects = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestBoolField(t *testing.T) {
	doc := `{"showInGallery": true, "audioOnly": false}`

	if v, ok := BoolField(doc, "showInGallery"); !ok || !v {
		t.Errorf("Expected showInGallery true, got %v/%v", v, ok)
	}
	if v, ok := BoolField(doc, "audioOnly"); !ok || v {
		t.Errorf("Expected audioOnly false, got %v/%v", v, ok)
	}
	if _, ok := BoolField(doc, "missing"); ok {
		t.Error("Expected no bool for missing key")
	}
}
