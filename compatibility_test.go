package lazyxml

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// step is the normalized form both tokenizers are reduced to: empty tags
// become an open step followed by a close step, because encoding/xml
// reports <a/> as a StartElement/EndElement pair.
type step struct {
	Kind  string // "open", "close", "text"
	Name  string
	Text  string
	Attrs []attr
}

func lazySteps(t *testing.T, doc string) []step {
	t.Helper()
	var out []step
	r := NewReader([]byte(doc))
	for {
		ev, err := r.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		switch ev.Type {
		case EventEOF:
			return out
		case EventText:
			out = append(out, step{Kind: "text", Text: string(ev.Content)})
		case EventOpenTag, EventEmptyTag:
			out = append(out, step{Kind: "open", Name: string(ev.Name), Attrs: collectAttrs(t, ev.Attrs())})
			if ev.Type == EventEmptyTag {
				out = append(out, step{Kind: "close", Name: string(ev.Name)})
			}
		case EventCloseTag:
			out = append(out, step{Kind: "close", Name: string(ev.Name)})
		}
	}
}

func stdlibSteps(t *testing.T, doc string) []step {
	t.Helper()
	var out []step
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out
			}
			t.Fatalf("Token: %v", err)
		}
		switch tk := tok.(type) {
		case xml.StartElement:
			var attrs []attr
			for _, a := range tk.Attr {
				attrs = append(attrs, attr{Key: a.Name.Local, Value: a.Value})
			}
			out = append(out, step{Kind: "open", Name: tk.Name.Local, Attrs: attrs})
		case xml.EndElement:
			out = append(out, step{Kind: "close", Name: tk.Name.Local})
		case xml.CharData:
			if text := string(trimSpace([]byte(tk))); text != "" {
				out = append(out, step{Kind: "text", Text: text})
			}
		}
	}
}

// TestCompatibilityWithStandardLibrary checks that on well-formed,
// entity-free documents the event stream agrees with encoding/xml. The
// corpus avoids what the two tokenizers deliberately treat differently:
// entities, namespaces, CDATA, comments and declarations.
func TestCompatibilityWithStandardLibrary(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"single_empty", "<a/>"},
		{"single_pair", "<a></a>"},
		{"text_content", "<a>hello</a>"},
		{"nested", "<a><b><c/></b></a>"},
		{"siblings", "<r><a/><b/><c/></r>"},
		{"attributes", `<a x="1" y="two"/>`},
		{"single_quotes", `<a x='1'/>`},
		{"mixed_quotes", `<a x="1" y='2'/>`},
		{"mixed_content", "<p>before<b>bold</b>after</p>"},
		{"whitespace", "<r>\n\t<a>one</a>\n\t<b>two</b>\n</r>"},
		{"deep", "<a><b><c><d><e>deep</e></d></c></b></a>"},
		{"attr_spacing", `<a  x="1"   y="2"  >t</a>`},
		{"document", `<library><book id="1"><title>Go</title><pages count="300"/></book><book id="2"><title>XML</title></book></library>`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := lazySteps(t, tc.doc)
			want := stdlibSteps(t, tc.doc)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("streams disagree (-stdlib +lazyxml):\n%s", diff)
			}
		})
	}
}

// TestLenientBeyondStandardLibrary pins down inputs that encoding/xml
// rejects but this tokenizer accepts. These are features, not accidents.
func TestLenientBeyondStandardLibrary(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"unbalanced", "<a><b></a>"},
		{"close_without_open", "</a>"},
		{"close_with_trailing_slash", "</a/>"},
		{"junk_attribute_key", `<a ke!y="1"/>`},
		{"missing_attr_separator", `<a x="1"y="2"/>`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !Valid([]byte(tc.doc)) {
				t.Fatalf("Valid(%q) = false, want lenient acceptance", tc.doc)
			}
			dec := xml.NewDecoder(strings.NewReader(tc.doc))
			var err error
			for err == nil {
				_, err = dec.Token()
			}
			if errors.Is(err, io.EOF) {
				t.Logf("encoding/xml also accepted %q", tc.doc)
			}
		})
	}
}
