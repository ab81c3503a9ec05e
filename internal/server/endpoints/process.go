package endpoints

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/printworks/duplexer/internal/api"
	"github.com/printworks/duplexer/internal/pdf"
)

// Feature names accepted by the process endpoint.
const (
	FeatureRemoveFirstLast = "remove_first_last"
	FeatureReverseOdd      = "reverse_odd"
	FeatureRotate          = "rotate"
	FeatureAddBlank        = "add_blank"
	FeatureDuplex          = "duplex"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// ProcessEndpoint handles POST /process with a multipart PDF upload.
// The selected feature transform is applied and the result is returned
// as a PDF attachment.
type ProcessEndpoint struct {
	Logger         *slog.Logger
	MaxUploadBytes int64
}

var _ api.Endpoint = (*ProcessEndpoint)(nil)

func (e *ProcessEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/process", e.handler
}

func (e *ProcessEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	log := e.Logger
	if log == nil {
		log = slog.Default()
	}

	if e.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, e.MaxUploadBytes)
	}

	// Parse multipart form with 32MB max memory; larger uploads spill to disk.
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("file too large, limit is %d bytes", maxErr.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("pdf")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("file %s is not a PDF", header.Filename))
		return
	}

	feature := r.FormValue("feature")
	if feature == "" {
		feature = FeatureRemoveFirstLast
	}

	angle := 180
	if v := r.FormValue("angle"); v != "" {
		angle, err = strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid angle %q", v))
			return
		}
	}

	reqID := uuid.New().String()
	log.Info("processing upload",
		"request_id", reqID, "file", header.Filename, "feature", feature, "size", header.Size)

	doc, err := pdf.Read(file, header.Filename)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse PDF: %v", err))
		return
	}

	out, err := applyFeature(doc, feature, angle)
	if err != nil {
		status := http.StatusBadRequest
		writeError(w, status, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := pdf.Write(&buf, out.Pages); err != nil {
		log.Error("failed to serialize result", "request_id", reqID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to build output PDF")
		return
	}

	log.Info("processed upload", "request_id", reqID, "pages", out.PageCount())

	name := "processed_" + sanitizeFilename(header.Filename)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// applyFeature dispatches one of the supported per-file transforms.
func applyFeature(doc *pdf.Document, feature string, angle int) (*pdf.Document, error) {
	switch feature {
	case FeatureRemoveFirstLast:
		return doc.TrimEnds()
	case FeatureReverseOdd:
		return doc.ReverseOdd(), nil
	case FeatureRotate:
		return doc.RotateAll(angle)
	case FeatureAddBlank:
		return doc.PadEven()
	case FeatureDuplex:
		return doc.Duplex(angle)
	default:
		return nil, fmt.Errorf("unknown feature %q", feature)
	}
}

func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	safe := unsafeFilenameChars.ReplaceAllString(base, "_")
	if safe == "" || safe == "." {
		safe = "output.pdf"
	}
	return safe
}

func (e *ProcessEndpoint) Command(getServerURL func() string) *cobra.Command {
	var (
		feature string
		angle   int
		output  string
	)

	cmd := &cobra.Command{
		Use:   "process <file.pdf>",
		Short: "Process a PDF through the running server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			data, err := client.PostFile(cmd.Context(), "/process", "pdf", args[0], map[string]string{
				"feature": feature,
				"angle":   strconv.Itoa(angle),
			})
			if err != nil {
				return err
			}

			if output == "" {
				output = "processed_" + filepath.Base(args[0])
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Printf("Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&feature, "feature", FeatureRemoveFirstLast,
		"transform to apply: remove_first_last, reverse_odd, rotate, add_blank, duplex")
	cmd.Flags().IntVar(&angle, "angle", 180, "rotation angle for rotate/duplex (90, 180, 270)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: processed_<input>)")

	return cmd
}
