package opc

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

// buildPackage assembles a small but complete package for writer tests.
func buildPackage(t *testing.T) *Package {
	t.Helper()

	p := NewPackage()
	if err := p.AddPart("ppt/presentation.xml", "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml", []byte("<presentation/>")); err != nil {
		t.Fatal(err)
	}
	if err := p.AddPart("ppt/slides/slide1.xml", "application/vnd.openxmlformats-officedocument.presentationml.slide+xml", []byte("<sld/>")); err != nil {
		t.Fatal(err)
	}
	p.AddRelationship("", RelTypeOfficeDocument, "ppt/presentation.xml")
	p.AddRelationship("ppt/presentation.xml", RelTypeSlide, "slides/slide1.xml")
	return p
}

func TestAddPartRejectsDuplicates(t *testing.T) {
	p := NewPackage()
	if err := p.AddPart("a.xml", "application/xml", nil); err != nil {
		t.Fatal(err)
	}
	err := p.AddPart("a.xml", "application/xml", nil)
	if !errors.Is(err, ErrDuplicatePart) {
		t.Fatalf("error = %v, want ErrDuplicatePart", err)
	}
}

func TestRelationshipIDScopes(t *testing.T) {
	p := NewPackage()

	// Each scope numbers from rId1 independently.
	if id := p.AddRelationship("", RelTypeOfficeDocument, "ppt/presentation.xml"); id != "rId1" {
		t.Errorf("first package rel id = %s, want rId1", id)
	}
	if id := p.AddRelationship("", RelTypeCoreProps, "docProps/core.xml"); id != "rId2" {
		t.Errorf("second package rel id = %s, want rId2", id)
	}
	if id := p.AddRelationship("ppt/presentation.xml", RelTypeSlide, "slides/slide1.xml"); id != "rId1" {
		t.Errorf("first presentation rel id = %s, want rId1", id)
	}
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		source, target, want string
	}{
		{"", "ppt/presentation.xml", "ppt/presentation.xml"},
		{"ppt/presentation.xml", "slides/slide1.xml", "ppt/slides/slide1.xml"},
		{"ppt/slides/slide1.xml", "../slideLayouts/slideLayout1.xml", "ppt/slideLayouts/slideLayout1.xml"},
		{"ppt/slides/slide1.xml", "../media/image1.png", "ppt/media/image1.png"},
	}
	for _, tt := range tests {
		if got := ResolveTarget(tt.source, tt.target); got != tt.want {
			t.Errorf("ResolveTarget(%q, %q) = %q, want %q", tt.source, tt.target, got, tt.want)
		}
	}
}

func TestRelsName(t *testing.T) {
	if got := relsName(""); got != "_rels/.rels" {
		t.Errorf("relsName(\"\") = %q", got)
	}
	if got := relsName("ppt/slides/slide2.xml"); got != "ppt/slides/_rels/slide2.xml.rels" {
		t.Errorf("relsName(slide2) = %q", got)
	}
}

func TestWriteEntryOrder(t *testing.T) {
	p := buildPackage(t)

	var buf bytes.Buffer
	if err := Write(&buf, p); err != nil {
		t.Fatal(err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slides/slide1.xml",
	}
	if len(zr.File) != len(want) {
		t.Fatalf("entry count = %d, want %d", len(zr.File), len(want))
	}
	for i, f := range zr.File {
		if f.Name != want[i] {
			t.Errorf("entry %d = %s, want %s", i, f.Name, want[i])
		}
	}
}

func TestWriteDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	if err := Write(&first, buildPackage(t)); err != nil {
		t.Fatal(err)
	}
	if err := Write(&second, buildPackage(t)); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two writes of identical packages differ")
	}
}

func TestWriteValidation(t *testing.T) {
	tests := []struct {
		name string
		pkg  func(t *testing.T) *Package
	}{
		{
			"empty package",
			func(t *testing.T) *Package { return NewPackage() },
		},
		{
			"no main document relationship",
			func(t *testing.T) *Package {
				p := NewPackage()
				if err := p.AddPart("ppt/presentation.xml", "application/xml", nil); err != nil {
					t.Fatal(err)
				}
				return p
			},
		},
		{
			"dangling relationship",
			func(t *testing.T) *Package {
				p := buildPackage(t)
				p.AddRelationship("ppt/presentation.xml", RelTypeSlide, "slides/slide99.xml")
				return p
			},
		},
		{
			"untyped part",
			func(t *testing.T) *Package {
				p := buildPackage(t)
				if err := p.AddPart("ppt/media/image1.png", "", []byte{1}); err != nil {
					t.Fatal(err)
				}
				return p
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Write(&buf, tt.pkg(t))
			if !errors.Is(err, ErrPackaging) {
				t.Fatalf("error = %v, want ErrPackaging", err)
			}
			if buf.Len() != 0 {
				t.Error("partial archive written despite validation failure")
			}
		})
	}
}

func TestContentTypesBody(t *testing.T) {
	p := buildPackage(t)
	p.SetDefault("png", "image/png")

	body, err := contentTypesBody(p)
	if err != nil {
		t.Fatal(err)
	}
	s := string(body)

	if !strings.HasPrefix(s, xmlDecl) {
		t.Error("missing XML declaration")
	}
	// Defaults sorted by extension: png < rels < xml.
	png := strings.Index(s, `Extension="png"`)
	rels := strings.Index(s, `Extension="rels"`)
	xmlExt := strings.Index(s, `Extension="xml"`)
	if png < 0 || rels < 0 || xmlExt < 0 || !(png < rels && rels < xmlExt) {
		t.Errorf("defaults missing or unsorted: %s", s)
	}
	if !strings.Contains(s, `PartName="/ppt/slides/slide1.xml"`) {
		t.Errorf("missing slide override: %s", s)
	}
}

func TestContainerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, buildPackage(t)); err != nil {
		t.Fatal(err)
	}

	c, err := NewContainer(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	main, err := c.MainDocument()
	if err != nil {
		t.Fatal(err)
	}
	if main != "ppt/presentation.xml" {
		t.Errorf("MainDocument = %s", main)
	}

	data, err := c.ReadPart("ppt/slides/slide1.xml")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<sld/>" {
		t.Errorf("slide payload = %q", data)
	}

	rels, err := c.Relationships("ppt/presentation.xml")
	if err != nil {
		t.Fatal(err)
	}
	if len(rels) != 1 || rels[0].ID != "rId1" || rels[0].Type != RelTypeSlide {
		t.Errorf("presentation rels = %+v", rels)
	}

	// Missing relationship parts are an empty set, not an error.
	rels, err = c.Relationships("ppt/slides/slide1.xml")
	if err != nil || rels != nil {
		t.Errorf("slide rels = %+v, err = %v, want empty", rels, err)
	}

	ct, err := c.ContentTypes()
	if err != nil {
		t.Fatal(err)
	}
	if got := ct.TypeOf("ppt/slides/slide1.xml"); !strings.Contains(got, "presentationml.slide+xml") {
		t.Errorf("TypeOf(slide1) = %q", got)
	}
	if got := ct.TypeOf("_rels/.rels"); got != "application/vnd.openxmlformats-package.relationships+xml" {
		t.Errorf("TypeOf(.rels) = %q", got)
	}
}

func TestContainerRejectsNonPackage(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	fw, err := zw.Create("hello.txt")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte("hi"))
	zw.Close()

	_, err = NewContainer(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if !errors.Is(err, ErrNotPackage) {
		t.Fatalf("error = %v, want ErrNotPackage", err)
	}
}

func TestReadPartStripsBOM(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	write := func(name string, data []byte) {
		t.Helper()
		fw, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		fw.Write(data)
	}
	write(ContentTypesName, []byte(`<Types/>`))
	write("_rels/.rels", []byte(`<Relationships/>`))
	write("utf8bom.xml", append([]byte{0xEF, 0xBB, 0xBF}, []byte("<a/>")...))
	// UTF-16 LE with BOM.
	utf16 := []byte{0xFF, 0xFE}
	for _, r := range "<b/>" {
		utf16 = append(utf16, byte(r), 0)
	}
	write("utf16.xml", utf16)
	zw.Close()

	c, err := NewContainer(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}

	data, err := c.ReadPart("utf8bom.xml")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<a/>" {
		t.Errorf("UTF-8 BOM payload = %q", data)
	}

	data, err = c.ReadPart("utf16.xml")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<b/>" {
		t.Errorf("UTF-16 payload = %q", data)
	}
}

func TestReadPartBinaryUntouched(t *testing.T) {
	// PNG signature plus bytes that are not valid UTF-8; nothing here may
	// be rewritten or replaced on the way out.
	payload := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0xFF, 0x00, 0xFE}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	write := func(name string, data []byte) {
		t.Helper()
		fw, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		fw.Write(data)
	}
	write(ContentTypesName, []byte(`<Types/>`))
	write("_rels/.rels", []byte(`<Relationships/>`))
	write("ppt/media/image1.png", payload)
	zw.Close()

	c, err := NewContainer(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}

	data, err := c.ReadPart("ppt/media/image1.png")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("media payload = %x, want %x", data, payload)
	}
}
