package capture

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/planclip/planclip/internal/geom"
)

// View is the operator-facing side of a capture session. The session only
// sees a finite sequence of events (rectangle drawn, label entered, view
// closed, save confirmed); which toolkit produces them is the view's
// business.
type View interface {
	// ShowPreview tells the operator where the rendered page is.
	ShowPreview(path string, size image.Point) error
	// NextRect blocks for the next drawn rectangle in pixel space.
	// ok is false once the operator closes the view.
	NextRect() (r geom.Rect, ok bool, err error)
	// AskLabel shows the text extracted for the pending rectangle and asks
	// for its label. An empty label discards the rectangle.
	AskLabel(text string) (string, error)
	// ConfirmSave asks whether the n accumulated rectangles should be
	// persisted as a template.
	ConfirmSave(n int) (bool, error)
}

// PromptView drives a capture session over a line terminal: the operator
// opens the preview PNG in an image viewer and types pixel rectangles as
// "x0 y0 x1 y1" lines. A blank line or EOF closes the view.
type PromptView struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPromptView(in io.Reader, out io.Writer) *PromptView {
	return &PromptView{in: bufio.NewScanner(in), out: out}
}

func (v *PromptView) ShowPreview(path string, size image.Point) error {
	fmt.Fprintf(v.out, "Vista previa renderizada en %s (%dx%d px).\n", path, size.X, size.Y)
	fmt.Fprintln(v.out, "Abre la imagen en un visor y lee las coordenadas de cada región.")
	fmt.Fprintln(v.out, "Instrucciones:")
	fmt.Fprintln(v.out, "  - Ingresa un rectángulo como: x0 y0 x1 y1 (píxeles)")
	fmt.Fprintln(v.out, "  - Etiqueta vacía para descartar el rectángulo")
	fmt.Fprintln(v.out, "  - Línea en blanco para finalizar")
	return nil
}

func (v *PromptView) NextRect() (geom.Rect, bool, error) {
	for {
		fmt.Fprint(v.out, "\nRectángulo (x0 y0 x1 y1): ")
		if !v.in.Scan() {
			return geom.Rect{}, false, v.in.Err()
		}
		line := strings.TrimSpace(v.in.Text())
		if line == "" {
			return geom.Rect{}, false, nil
		}
		r, err := parseRect(line)
		if err != nil {
			fmt.Fprintf(v.out, "Entrada inválida (%v), intenta de nuevo.\n", err)
			continue
		}
		return r, true, nil
	}
}

func (v *PromptView) AskLabel(text string) (string, error) {
	if text == "" {
		text = "<vacío>"
	}
	fmt.Fprintf(v.out, "Texto capturado: %s\n", text)
	fmt.Fprint(v.out, "Etiqueta/columna (Enter para descartar): ")
	if !v.in.Scan() {
		return "", v.in.Err()
	}
	return strings.TrimSpace(v.in.Text()), nil
}

func (v *PromptView) ConfirmSave(n int) (bool, error) {
	fmt.Fprintf(v.out, "\n¿Guardar plantilla con %d rectángulos? [s/N]: ", n)
	if !v.in.Scan() {
		return false, v.in.Err()
	}
	answer := strings.ToLower(strings.TrimSpace(v.in.Text()))
	return answer == "s" || answer == "si" || answer == "y" || answer == "yes", nil
}

func parseRect(line string) (geom.Rect, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) != 4 {
		return geom.Rect{}, fmt.Errorf("se esperaban 4 números, hay %d", len(fields))
	}
	var vals [4]float64
	for i, fld := range fields {
		f, err := strconv.ParseFloat(fld, 64)
		if err != nil {
			return geom.Rect{}, fmt.Errorf("%q no es un número", fld)
		}
		vals[i] = f
	}
	return geom.Rect{X0: vals[0], Y0: vals[1], X1: vals[2], Y1: vals[3]}, nil
}
