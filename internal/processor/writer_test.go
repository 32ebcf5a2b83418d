package processor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/e1four15f/AgeDatasetVisualization/internal/geo"

	"github.com/cheekybits/is"
)

func nullFeature(name string, id int) geo.Feature {
	return geo.Feature{Type: geo.TypeFeature, Properties: geo.Properties{Name: name}, ID: id}
}

func TestFeatureWriterLayout(t *testing.T) {
	is := is.New(t)

	var buf bytes.Buffer
	fw := NewFeatureWriter(&buf)
	is.NoErr(fw.Write(nullFeature("A", 0)))
	is.NoErr(fw.Write(nullFeature("B", 1)))
	is.NoErr(fw.Write(nullFeature("C", 2)))
	is.NoErr(fw.Close())
	is.Equal(fw.Count(), 3)

	want := `{"type":"FeatureCollection","features":[` + "\n" +
		`{"type":"Feature","properties":{"name":"A","lat":null,"lng":null,"area":0},"geometry":null,"id":0},` + "\n" +
		`{"type":"Feature","properties":{"name":"B","lat":null,"lng":null,"area":0},"geometry":null,"id":1},` + "\n" +
		`{"type":"Feature","properties":{"name":"C","lat":null,"lng":null,"area":0},"geometry":null,"id":2}` + "\n" +
		`]}`
	is.Equal(buf.String(), want)
}

func TestFeatureWriterSingle(t *testing.T) {
	is := is.New(t)

	var buf bytes.Buffer
	fw := NewFeatureWriter(&buf)
	is.NoErr(fw.Write(nullFeature("A", 0)))
	is.NoErr(fw.Close())

	lines := strings.Split(buf.String(), "\n")
	is.Equal(len(lines), 3)
	is.False(strings.HasSuffix(lines[1], ","))
	is.Equal(lines[2], "]}")
}

func TestFeatureWriterEmpty(t *testing.T) {
	is := is.New(t)

	var buf bytes.Buffer
	fw := NewFeatureWriter(&buf)
	is.NoErr(fw.Close())
	is.Equal(buf.String(), `{"type":"FeatureCollection","features":[`+"\n"+`]}`)
}

func TestFeatureWriterNoHTMLEscape(t *testing.T) {
	is := is.New(t)

	var buf bytes.Buffer
	fw := NewFeatureWriter(&buf)
	is.NoErr(fw.Write(nullFeature("Trinidad & Tobago", 0)))
	is.NoErr(fw.Close())
	is.True(strings.Contains(buf.String(), `"name":"Trinidad & Tobago"`))
}

func TestFeatureWriterClosed(t *testing.T) {
	is := is.New(t)

	var buf bytes.Buffer
	fw := NewFeatureWriter(&buf)
	is.NoErr(fw.Close())
	is.NoErr(fw.Close())

	err := fw.Write(nullFeature("A", 0))
	is.True(errors.Is(err, errWriterClosed))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFeatureWriterPropagatesErrors(t *testing.T) {
	is := is.New(t)

	fw := NewFeatureWriter(failingWriter{})
	_ = fw.Write(nullFeature("A", 0))
	is.Err(fw.Close())
}
