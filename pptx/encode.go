package pptx

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/slidekit/slidekit/model"
	"github.com/slidekit/slidekit/opc"
)

// DefaultApplication names the producing application in docProps/app.xml
// when the caller does not override it.
const DefaultApplication = "slidekit"

// EncodeOptions adjusts serialization. The zero value is ready to use.
type EncodeOptions struct {
	// Workers caps the number of slides serialized concurrently.
	// Values below one mean one worker per CPU.
	Workers int

	// Application overrides the application name recorded in the
	// extended document properties.
	Application string
}

// mediaFile is one image part shared by the picture shapes that embed it.
type mediaFile struct {
	name        string
	contentType string
	data        []byte
}

var imageContentTypes = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
}

// Encode serializes a presentation into an OPC package. The package is
// fully assembled in memory; writing it out is the opc package's job.
func Encode(prs *model.Presentation) (*opc.Package, error) {
	return EncodeWithOptions(prs, EncodeOptions{})
}

// EncodeWithOptions is Encode with explicit serialization options.
//
// Drawing ids are assigned document-wide: walking slides in order and
// shapes within each slide in z-order, shapes receive ids 2, 3, 4, ...
// (id 1 belongs to each slide's group root). The same presentation
// always yields the same package contents.
func EncodeWithOptions(prs *model.Presentation, opts EncodeOptions) (*opc.Package, error) {
	if prs == nil {
		return nil, errors.New("pptx: nil presentation")
	}
	if prs.SlideWidth <= 0 || prs.SlideHeight <= 0 {
		return nil, fmt.Errorf("%w: slide size %v x %v", model.ErrInvalidGeometry, prs.SlideWidth, prs.SlideHeight)
	}
	for i, sld := range prs.Slides {
		for j, sp := range sld.Shapes {
			if sp.Bounds.Width < 0 || sp.Bounds.Height < 0 {
				return nil, fmt.Errorf("%w: slide %d shape %d", model.ErrInvalidGeometry, i+1, j)
			}
		}
	}

	app := opts.Application
	if app == "" {
		app = DefaultApplication
	}
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	media, embeds, targets, err := planMedia(prs)
	if err != nil {
		return nil, err
	}

	// First drawing id of each slide; ids continue across slides.
	starts := make([]uint64, len(prs.Slides))
	next := uint64(2)
	for i, sld := range prs.Slides {
		starts[i] = next
		next += uint64(len(sld.Shapes))
	}

	results := make([][]byte, len(prs.Slides))
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range prs.Slides {
		i := i
		g.Go(func() error {
			data, err := renderSlide(prs.Slides[i], starts[i], embeds[i])
			if err != nil {
				return fmt.Errorf("pptx: slide %d: %w", i+1, err)
			}
			results[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	coreData, err := corePropsXML(prs.Metadata)
	if err != nil {
		return nil, err
	}
	appData, err := appPropsXML(prs, app)
	if err != nil {
		return nil, err
	}
	presData, err := renderPresentation(prs)
	if err != nil {
		return nil, err
	}

	pkg := opc.NewPackage()
	parts := []struct {
		name, ct string
		data     []byte
	}{
		{corePropsPart, ctCoreProps, coreData},
		{appPropsPart, ctExtendedProps, appData},
		{presentationPart, ctPresentation, presData},
		{slideMasterPart, ctSlideMaster, []byte(slideMasterXML)},
		{slideLayoutPart, ctSlideLayout, []byte(slideLayoutXML)},
		{themePart, ctTheme, []byte(themeXML)},
	}
	for _, pt := range parts {
		if err := pkg.AddPart(pt.name, pt.ct, pt.data); err != nil {
			return nil, err
		}
	}
	for i, data := range results {
		if err := pkg.AddPart(slidePartName(i+1), ctSlide, data); err != nil {
			return nil, err
		}
	}
	for _, m := range media {
		// Media parts are typed by extension Default, not Override.
		if err := pkg.AddPart(m.name, "", m.data); err != nil {
			return nil, err
		}
		pkg.SetDefault(extensionOf(m.name), m.contentType)
	}

	pkg.AddRelationship("", opc.RelTypeOfficeDocument, presentationPart)
	pkg.AddRelationship("", opc.RelTypeCoreProps, corePropsPart)
	pkg.AddRelationship("", opc.RelTypeExtendedProps, appPropsPart)

	pkg.AddRelationship(presentationPart, opc.RelTypeSlideMaster, "slideMasters/slideMaster1.xml")
	pkg.AddRelationship(presentationPart, opc.RelTypeTheme, "theme/theme1.xml")
	for i := range prs.Slides {
		pkg.AddRelationship(presentationPart, opc.RelTypeSlide, "slides/slide"+strconv.Itoa(i+1)+".xml")
	}

	pkg.AddRelationship(slideMasterPart, opc.RelTypeSlideLayout, "../slideLayouts/slideLayout1.xml")
	pkg.AddRelationship(slideMasterPart, opc.RelTypeTheme, "../theme/theme1.xml")
	pkg.AddRelationship(slideLayoutPart, opc.RelTypeSlideMaster, "../slideMasters/slideMaster1.xml")

	for i := range prs.Slides {
		src := slidePartName(i + 1)
		pkg.AddRelationship(src, opc.RelTypeSlideLayout, "../slideLayouts/slideLayout1.xml")
		for _, target := range targets[i] {
			pkg.AddRelationship(src, opc.RelTypeImage, target)
		}
	}

	return pkg, nil
}

// planMedia assigns image parts and slide-local relationship ids ahead
// of serialization, so workers can emit r:embed attributes without
// touching shared state. Shapes reusing one *model.Image share a part.
// embeds holds each slide's r:embed ids in picture z-order; targets
// holds the matching relationship targets.
func planMedia(prs *model.Presentation) (media []mediaFile, embeds, targets [][]string, err error) {
	index := map[*model.Image]int{}
	embeds = make([][]string, len(prs.Slides))
	targets = make([][]string, len(prs.Slides))

	for i, sld := range prs.Slides {
		rid := 2 // rId1 is the layout
		for _, sp := range sld.Shapes {
			if sp.Kind != model.Picture || sp.Image == nil {
				continue
			}
			n, ok := index[sp.Image]
			if !ok {
				ct, ok := imageContentTypes[sp.Image.Format]
				if !ok {
					return nil, nil, nil, fmt.Errorf("%w: image format %q", ErrUnsupportedShape, sp.Image.Format)
				}
				n = len(media)
				index[sp.Image] = n
				media = append(media, mediaFile{
					name:        fmt.Sprintf("ppt/media/image%d.%s", n+1, sp.Image.Format),
					contentType: ct,
					data:        sp.Image.Data,
				})
			}
			embeds[i] = append(embeds[i], "rId"+strconv.Itoa(rid))
			targets[i] = append(targets[i], "../"+media[n].name[len("ppt/"):])
			rid++
		}
	}
	return media, embeds, targets, nil
}

func slidePartName(n int) string {
	return "ppt/slides/slide" + strconv.Itoa(n) + ".xml"
}

func extensionOf(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
	}
	return ""
}

// renderSlide renders one slide part. firstID is the drawing id of the
// slide's first shape; embeds lists the relationship ids of its picture
// shapes in z-order.
func renderSlide(sld *model.Slide, firstID uint64, embeds []string) ([]byte, error) {
	tree := spTreeMarkup{
		NvGrpSpPr: nvGrpSpPrMarkup{CNvPr: cNvPrMarkup{ID: 1, Name: ""}},
	}

	id := firstID
	pic := 0
	for _, sp := range sld.Shapes {
		var embed string
		if sp.Kind == model.Picture {
			if pic < len(embeds) {
				embed = embeds[pic]
			}
			pic++
		}
		el, err := buildShape(sp, id, embed)
		if err != nil {
			return nil, err
		}
		tree.Shapes = append(tree.Shapes, el)
		id++
	}

	doc := sldMarkup{
		XmlnsA: nsDrawingML,
		XmlnsR: nsDocRelationships,
		XmlnsP: nsPresentationML,
		CSld:   cSldMarkup{SpTree: tree},
	}
	return marshalPart(doc)
}

// renderPresentation renders ppt/presentation.xml. Slide ids count from 256
// and reference presentation relationships rId3 onward; rId1 and rId2
// are the master and theme.
func renderPresentation(prs *model.Presentation) ([]byte, error) {
	doc := presentationMarkup{
		XmlnsA: nsDrawingML,
		XmlnsR: nsDocRelationships,
		XmlnsP: nsPresentationML,
		SldMasterIdLst: sldMasterIdLstMarkup{
			SldMasterId: []sldMasterIdMarkup{{ID: 2147483648, RID: "rId1"}},
		},
		SldSz:   extMarkup{CX: prs.SlideWidth.EMU(), CY: prs.SlideHeight.EMU()},
		NotesSz: extMarkup{CX: prs.SlideHeight.EMU(), CY: prs.SlideWidth.EMU()},
	}
	for i := range prs.Slides {
		doc.SldIdLst.SldId = append(doc.SldIdLst.SldId, sldIdMarkup{
			ID:  uint64(256 + i),
			RID: "rId" + strconv.Itoa(i+3),
		})
	}
	return marshalPart(doc)
}
