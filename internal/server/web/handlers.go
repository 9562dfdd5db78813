package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/careadmin/internal/common"
	"github.com/dmitrijs2005/careadmin/internal/server/files"
	"github.com/dmitrijs2005/careadmin/internal/server/navigation"
	"github.com/dmitrijs2005/careadmin/internal/server/profile"
	"github.com/dmitrijs2005/careadmin/internal/server/session"
	"github.com/dmitrijs2005/careadmin/internal/server/state"
	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *HTTPServer) render(c *gin.Context, status int, v *view) {
	c.HTML(status, "layout", v)
}

// page renders whatever navigation resolves the request path to.
func (s *HTTPServer) page(c *gin.Context) {
	snap := workspace(c).Snapshot()
	path := c.Request.URL.Path

	dest := navigation.Resolve(snap.Authenticated(), path)
	if dest.Redirect != "" {
		c.Redirect(dest.Status, dest.Redirect)
		return
	}

	v := s.newView(dest.Page, path, snap)
	if dest.Page == navigation.PageFiles {
		v.Notice = s.filesNotice(c, snap.Language)
	}
	s.render(c, dest.Status, v)
}

func (s *HTTPServer) login(c *gin.Context) {
	workspace(c).Login(c.Request.Context(), c.PostForm("email"), c.PostForm("password"))
	c.Redirect(http.StatusSeeOther, navigation.Home)
}

func (s *HTTPServer) logout(c *gin.Context) {
	workspace(c).Logout(c.Request.Context())
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *HTTPServer) showRegister(c *gin.Context) {
	workspace(c).ShowRegister()
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *HTTPServer) showLogin(c *gin.Context) {
	workspace(c).ShowLogin()
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *HTTPServer) register(c *gin.Context) {
	ws := workspace(c)

	var form session.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	err := ws.Register(c.Request.Context(), form)
	if err == nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	var fe *session.FormError
	if !errors.As(err, &fe) {
		_ = c.Error(err)
		c.Status(http.StatusInternalServerError)
		return
	}

	snap := ws.Snapshot()
	v := s.newView(navigation.PageAuth, "/", snap)
	v.Errors = fe.Messages
	v.Notice = &notice{
		Kind:     "error",
		Title:    s.catalog.T(snap.Language, "register"),
		Body:     strings.Join(fe.Messages, " "),
		Blocking: true,
	}
	s.render(c, http.StatusBadRequest, v)
}

func (s *HTTPServer) language(c *gin.Context) {
	workspace(c).SetLanguage(c.PostForm("lang"))
	c.Redirect(http.StatusSeeOther, safeNext(c.PostForm("next")))
}

// safeNext keeps redirects on this site.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.ContainsAny(next, "\\\r\n") {
		return "/"
	}
	return next
}

func (s *HTTPServer) profileEdit(c *gin.Context) {
	if err := workspace(c).StartEdit(); err != nil {
		s.actionError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/profile")
}

// profileValues collects the profile inputs present in the form. The
// notifications checkbox is preceded by a hidden "false" input, so the last
// value wins.
func profileValues(c *gin.Context) map[string]string {
	values := make(map[string]string)
	for _, f := range profile.Fields() {
		if vs, ok := c.GetPostFormArray(f); ok && len(vs) > 0 {
			values[f] = vs[len(vs)-1]
		}
	}
	return values
}

func (s *HTTPServer) profileSave(c *gin.Context) {
	if err := workspace(c).SaveProfile(c.Request.Context(), profileValues(c)); err != nil {
		s.actionError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/profile")
}

func (s *HTTPServer) profileCancel(c *gin.Context) {
	if err := workspace(c).CancelProfile(profileValues(c)); err != nil {
		s.actionError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/profile")
}

func (s *HTTPServer) filesCategory(c *gin.Context) {
	if err := workspace(c).SelectCategory(files.Category(c.PostForm("category"))); err != nil {
		s.actionError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/files")
}

func (s *HTTPServer) filesUpload(c *gin.Context) {
	ws := workspace(c)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUploadSize)
	form, err := c.MultipartForm()
	if err != nil {
		c.String(http.StatusBadRequest, "invalid upload: %v", err)
		return
	}

	if cat := form.Value["category"]; len(cat) > 0 && cat[0] != "" {
		if err := ws.SelectCategory(files.Category(cat[0])); err != nil {
			s.actionError(c, err)
			return
		}
	}

	headers := form.File["files"]
	inputs := make([]files.Input, 0, len(headers))
	for _, fh := range headers {
		inputs = append(inputs, files.Input{
			Name:     fh.Filename,
			Size:     fh.Size,
			MimeType: fh.Header.Get("Content-Type"),
		})
	}
	if len(inputs) == 0 {
		c.Redirect(http.StatusSeeOther, "/files")
		return
	}

	// the simulated upload runs to completion even if the browser leaves
	staged, err := ws.Stage(context.WithoutCancel(c.Request.Context()), inputs)
	if err != nil {
		s.actionError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/files?notice=uploaded&count="+strconv.Itoa(len(staged)))
}

func (s *HTTPServer) filesRemove(c *gin.Context) {
	if err := workspace(c).Remove(c.Request.Context(), c.Param("id")); err != nil {
		s.actionError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/files?notice=removed")
}

// filesNotice turns the query left by an upload or removal into a toast.
func (s *HTTPServer) filesNotice(c *gin.Context, lang string) *notice {
	switch c.Query("notice") {
	case "uploaded":
		count := c.Query("count")
		if _, err := strconv.Atoi(count); err != nil {
			count = "0"
		}
		return &notice{
			Kind:  "success",
			Title: s.catalog.T(lang, "uploadSuccess"),
			Body:  s.catalog.T(lang, "uploadSuccessBody", count),
		}
	case "removed":
		return &notice{
			Kind:  "success",
			Title: s.catalog.T(lang, "removeFile"),
			Body:  s.catalog.T(lang, "fileRemoved"),
		}
	}
	return nil
}

// actionError maps action errors to a response.
func (s *HTTPServer) actionError(c *gin.Context, err error) {
	ws := workspace(c)

	switch {
	case errors.Is(err, common.ErrUnauthenticated):
		c.Redirect(http.StatusSeeOther, "/")
	case errors.Is(err, common.ErrBusy):
		s.renderFilesError(c, ws.Snapshot(), http.StatusConflict)
	case errors.Is(err, common.ErrUnknownCategory):
		c.String(http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrNotEditing),
		errors.Is(err, common.ErrUnknownField),
		errors.Is(err, common.ErrInvalidValue):
		c.String(http.StatusBadRequest, err.Error())
	default:
		_ = c.Error(err)
		s.renderFilesError(c, ws.Snapshot(), http.StatusInternalServerError)
	}
}

func (s *HTTPServer) renderFilesError(c *gin.Context, snap state.Snapshot, status int) {
	v := s.newView(navigation.PageFiles, "/files", snap)
	v.Notice = &notice{
		Kind:  "error",
		Title: s.catalog.T(snap.Language, "uploadError"),
		Body:  s.catalog.T(snap.Language, "uploadErrorBody"),
	}
	s.render(c, status, v)
}
