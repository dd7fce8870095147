package badge

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

//go:embed certificate.html.tmpl
var certificateHTML string

var certificate = template.Must(template.New("certificate").Parse(certificateHTML))

type certificateData struct {
	Title  string
	Holder string
	Date   string
	CertID string
}

// RenderCertificate writes the printable HTML certificate for rec.
func RenderCertificate(w io.Writer, rec Record) error {
	date := ""
	if !rec.IssuedAt.IsZero() {
		date = rec.IssuedAt.Local().Format("1/2/2006")
	}
	err := certificate.Execute(w, certificateData{
		Title:  Name,
		Holder: rec.DisplayName(),
		Date:   date,
		CertID: rec.CertID,
	})
	if err != nil {
		return fmt.Errorf("render certificate: %w", err)
	}
	return nil
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName is the suggested download name for rec's certificate.
func FileName(rec Record) string {
	name := strings.Trim(unsafeFileChars.ReplaceAllString(rec.Holder, "-"), "-")
	if name == "" {
		name = "certificate"
	}
	return "linux-dragon-master-badge-" + name + ".html"
}

// ExportCertificate writes rec's certificate into dir under FileName and
// returns the path.
func ExportCertificate(dir string, rec Record) (string, error) {
	path := filepath.Join(dir, FileName(rec))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create certificate file: %w", err)
	}
	if err := RenderCertificate(f, rec); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write certificate file: %w", err)
	}
	return path, nil
}
