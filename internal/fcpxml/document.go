// Package fcpxml builds and serializes FCPXML 1.10 project documents. The
// document is constructed as a fully-formed immutable value first and
// serialized afterwards, so the tree shape is testable independently of the
// XML syntax.
package fcpxml

import "encoding/xml"

// Attribute order below follows struct field order; the consuming parser is
// schema-strict, so do not reorder fields.

// Document is the root <fcpxml> element.
type Document struct {
	XMLName   xml.Name  `xml:"fcpxml"`
	Version   string    `xml:"version,attr"`
	Resources Resources `xml:"resources"`
	Library   Library   `xml:"library"`
}

// Resources holds the format and asset definitions the sequence references.
type Resources struct {
	Format Format `xml:"format"`
	Asset  Asset  `xml:"asset"`
}

// Format is the video format resource (canvas size and frame duration).
type Format struct {
	ID            string `xml:"id,attr"`
	Name          string `xml:"name,attr"`
	FrameDuration string `xml:"frameDuration,attr"`
	Width         int    `xml:"width,attr"`
	Height        int    `xml:"height,attr"`
}

// Asset is the single media asset resource referencing the source file.
type Asset struct {
	ID            string `xml:"id,attr"`
	Name          string `xml:"name,attr"`
	Start         string `xml:"start,attr"`
	Duration      string `xml:"duration,attr"`
	HasAudio      string `xml:"hasAudio,attr"`
	AudioSources  string `xml:"audioSources,attr"`
	AudioChannels string `xml:"audioChannels,attr"`
	Format        string `xml:"format,attr"`
	Src           string `xml:"src,attr"`
}

// Library wraps the single event/project pair.
type Library struct {
	Event Event `xml:"event"`
}

// Event is the containing event, named after the exported clip.
type Event struct {
	Name    string  `xml:"name,attr"`
	Project Project `xml:"project"`
}

// Project owns the sequence.
type Project struct {
	Name     string   `xml:"name,attr"`
	Sequence Sequence `xml:"sequence"`
}

// Sequence is the timeline: zero-based start, non-drop-frame.
type Sequence struct {
	Format   string `xml:"format,attr"`
	TCStart  string `xml:"tcStart,attr"`
	TCFormat string `xml:"tcFormat,attr"`
	Spine    Spine  `xml:"spine"`
}

// Spine is the ordered primary track of clip references.
type Spine struct {
	Clips []AssetClip `xml:"asset-clip"`
}

// AssetClip is one clip reference on the spine. Offset and duration are
// rational frame counts over the format's shared denominator; start is the
// clip's source-aligned position in the same unit.
type AssetClip struct {
	Ref      string `xml:"ref,attr"`
	Offset   string `xml:"offset,attr"`
	Duration string `xml:"duration,attr"`
	Start    string `xml:"start,attr"`
	Lane     string `xml:"lane,attr"`
	Enabled  string `xml:"enabled,attr"`
}

// Serialize renders the document with the XML declaration and four-space
// indentation. encoding/xml escapes attribute values, covering paths and
// names containing XML metacharacters.
func (d Document) Serialize() ([]byte, error) {
	body, err := xml.MarshalIndent(d, "", "    ")
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
