package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/imnuman/hdrive"
)

// WriteCoordinates writes a sequence as a commented coordinate file,
// the degraded mode fallback for CAD packages without DXF import. The
// format matches the shop's convention: comment header, then one
// "x,y" record per point at micrometre resolution.
func WriteCoordinates(w io.Writer, s hdrive.PointSequence, description string) error {
	if _, err := fmt.Fprintf(w, "# %s\n# %d points\n# X, Y\n", description, s.Len()); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	rec := make([]string, 2)
	for _, p := range s.Points {
		rec[0] = strconv.FormatFloat(p.X, 'f', 6, 64)
		rec[1] = strconv.FormatFloat(p.Y, 'f', 6, 64)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CreateCoordinates writes a coordinate file to path.
func CreateCoordinates(path string, s hdrive.PointSequence, description string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCoordinates(f, s, description); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
