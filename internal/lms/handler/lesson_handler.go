package handler

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/service"
)

type LessonHandler struct {
	Service *service.LessonService
}

func NewLessonHandler(s *service.LessonService) *LessonHandler {
	return &LessonHandler{Service: s}
}

// Create handles POST /api/lessons/create
func (h *LessonHandler) Create(c echo.Context) error {
	var req model.CreateLessonReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := badRequest(model.FirstValidationError(err))
		return c.JSON(code, body)
	}

	lesson, err := h.Service.Create(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, model.OK(http.StatusCreated, "Lesson created", lesson))
}

// Get handles GET /api/lessons/:lessonId
func (h *LessonHandler) Get(c echo.Context) error {
	lesson, err := h.Service.Get(c.Request().Context(), c.Param("lessonId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Lesson fetched", lesson))
}

// Update handles PUT /api/lessons/:lessonId
func (h *LessonHandler) Update(c echo.Context) error {
	var req model.UpdateLessonReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := badRequest(model.FirstValidationError(err))
		return c.JSON(code, body)
	}

	lesson, err := h.Service.Update(c.Request().Context(), c.Param("lessonId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Lesson updated", lesson))
}

// UpdateWithFiles handles PUT /api/lessons/:lessonId/update-with-files. The
// field updates arrive as a JSON part named "lesson" next to the file parts.
func (h *LessonHandler) UpdateWithFiles(c echo.Context) error {
	var req model.UpdateLessonReq
	if raw := c.FormValue("lesson"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req); err != nil {
			code, body := badRequest("Invalid lesson payload")
			return c.JSON(code, body)
		}
	}
	if err := req.Validate(); err != nil {
		code, body := badRequest(model.FirstValidationError(err))
		return c.JSON(code, body)
	}

	files, err := formFiles(c, "files")
	if err != nil {
		code, body := badRequest("Invalid file upload")
		return c.JSON(code, body)
	}

	lesson, err := h.Service.UpdateWithFiles(c.Request().Context(), c.Param("lessonId"), req, files)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Lesson updated", lesson))
}

// Publish handles PUT /api/lessons/:lessonId/publish
func (h *LessonHandler) Publish(c echo.Context) error {
	if err := h.Service.Publish(c.Request().Context(), c.Param("lessonId")); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Lesson published", nil))
}

// UploadDocuments handles POST /api/lesson-documents/upload
func (h *LessonHandler) UploadDocuments(c echo.Context) error {
	lessonID := c.FormValue("lessonId")
	if lessonID == "" {
		code, body := badRequest("lessonId is required")
		return c.JSON(code, body)
	}

	files, err := formFiles(c, "files")
	if err != nil || len(files) == 0 {
		code, body := badRequest("At least one file is required")
		return c.JSON(code, body)
	}

	lesson, err := h.Service.AttachDocuments(c.Request().Context(), lessonID, files)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Documents uploaded", lesson))
}

// formFiles buffers the multipart files under the given field name.
func formFiles(c echo.Context, field string) ([]service.FileUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if err == http.ErrNotMultipart || err == http.ErrMissingBoundary {
			return nil, nil
		}
		return nil, err
	}

	var uploads []service.FileUpload
	for _, fh := range form.File[field] {
		data, err := readFile(fh)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, service.FileUpload{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return uploads, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
