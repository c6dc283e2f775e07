package endpoints

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bukkenlabs/bukken/internal/api"
	"github.com/bukkenlabs/bukken/internal/extract"
	"github.com/bukkenlabs/bukken/internal/pdftext"
	"github.com/bukkenlabs/bukken/internal/providers"
	"github.com/bukkenlabs/bukken/internal/svcctx"
)

// uploadField is the multipart form field carrying the PDF.
const uploadField = "pdf_file"

// ExtractEndpoint handles POST /extract-data/ with a multipart PDF upload.
type ExtractEndpoint struct{}

var _ api.Endpoint = (*ExtractEndpoint)(nil)

func (e *ExtractEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/extract-data/{$}", e.handler
}

func (e *ExtractEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Extract real-estate fields from a PDF
//	@Description	Uploads a Japanese real-estate PDF, extracts its text, and asks the configured LLM to return the sixteen field values as JSON. The response is served as a downloadable attachment.
//	@Tags			extract
//	@Accept			mpfd
//	@Produce		json
//	@Param			pdf_file	formData	file	true	"PDF document"
//	@Param			provider	query		string	false	"LLM provider override"
//	@Success		200	{object}	map[string]any
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/extract-data/ [post]
func (e *ExtractEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	logger := svcctx.LoggerFrom(r.Context())

	maxUpload := int64(32)
	if cm := svcctx.ConfigFrom(r.Context()); cm != nil && cm.Get().Extract.MaxUploadMB > 0 {
		maxUpload = cm.Get().Extract.MaxUploadMB
	}

	if err := r.ParseMultipartForm(maxUpload << 20); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("missing %s upload: %v", uploadField, err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read upload: %v", err))
		return
	}

	// Validate the stream before extraction. A corrupt PDF is an
	// unclassified processing failure, not a caller input error.
	pageCount, err := pdftext.PageCount(data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	text, err := pdftext.Extract(data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if text == "" {
		writeError(w, http.StatusBadRequest, "Could not extract text from the PDF file.")
		return
	}

	if logger != nil {
		logger.Info("extracting fields from upload",
			"request_id", requestID,
			"filename", header.Filename,
			"pages", pageCount,
			"text_chars", len(text),
		)
	}

	client, err := resolveLLM(r)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	extractor := svcctx.ExtractorFrom(r.Context())
	if extractor == nil {
		writeError(w, http.StatusServiceUnavailable, "extraction service not initialized")
		return
	}

	result, err := extractor.Extract(r.Context(), client, text)
	if err != nil {
		if logger != nil {
			logger.Error("extraction failed", "request_id", requestID, "error", err)
		}
		if errors.Is(err, extract.ErrNotJSON) {
			writeError(w, http.StatusInternalServerError,
				"Failed to parse JSON from the model's response. The AI might not have returned a valid JSON object.")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=extracted_data.json")
	w.Header().Set("X-Request-Id", requestID)
	w.WriteHeader(http.StatusOK)
	w.Write(result)
}

// resolveLLM picks the LLM client for this request: the ?provider override
// when present, otherwise the configured default.
func resolveLLM(r *http.Request) (providers.LLMClient, error) {
	registry := svcctx.RegistryFrom(r.Context())
	if registry == nil {
		return nil, errors.New("provider registry not initialized")
	}

	name := r.URL.Query().Get("provider")
	if name == "" {
		if cm := svcctx.ConfigFrom(r.Context()); cm != nil {
			name = cm.Get().Defaults.LLMProvider
		}
	}
	if name == "" {
		// With a single registered provider there is nothing to choose.
		if names := registry.ListLLM(); len(names) == 1 {
			name = names[0]
		}
	}
	if name == "" {
		return nil, errors.New("no LLM provider configured")
	}

	return registry.GetLLM(name)
}

func (e *ExtractEndpoint) Command(getServerURL func() string) *cobra.Command {
	var outputFile string
	cmd := &cobra.Command{
		Use:   "extract <pdf-file>",
		Short: "Extract real-estate fields from a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())

			var result map[string]any
			if err := client.PostFile(cmd.Context(), "/extract-data/", uploadField, args[0], &result); err != nil {
				return err
			}

			if outputFile != "" {
				return api.OutputToFile(result, outputFile)
			}
			return api.Output(result)
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output-file", "f", "", "Write the extracted JSON to a file")
	return cmd
}
