package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"examadda/internal/domain/entity"
	domainerrors "examadda/internal/domain/errors"
	mockUC "examadda/internal/mocks/usecase"
	"examadda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type instituteHandlerFixtures struct {
	e           *echo.Echo
	instituteUC *mockUC.MockInstituteUsecase
	owner       entity.AuthUser
}

func createTestInstituteHandler(t *testing.T) instituteHandlerFixtures {
	fx := instituteHandlerFixtures{
		e:           newTestEcho(),
		instituteUC: mockUC.NewMockInstituteUsecase(t),
		owner:       testPrincipal(entity.RoleInstitute),
	}
	h := NewInstituteHandler(InstituteHandlerParams{InstituteUC: fx.instituteUC, Logger: newDiscardLogger()})

	fx.e.GET("/institutes", h.List)
	fx.e.POST("/institutes", h.Create, asPrincipal(fx.owner))
	fx.e.GET("/institutes/me", h.GetMine, asPrincipal(fx.owner))
	fx.e.PATCH("/institutes/me/details", h.UpdateMineDetails, asPrincipal(fx.owner))
	fx.e.GET("/institutes/slug/:slug", h.GetBySlug)
	fx.e.GET("/institutes/slug/:slug/qr", h.PortalQRCode)

	return fx
}

func TestInstituteHandler_Create(t *testing.T) {
	fx := createTestInstituteHandler(t)
	fx.instituteUC.EXPECT().
		Create(mock.Anything, fx.owner, &usecase.CreateInstituteInput{Name: "Sunrise Classes"}).
		Return(&usecase.InstituteView{ID: uuid.New(), Name: "Sunrise Classes", Slug: "sunriseclasses", OwnerID: fx.owner.ID}, nil)

	rec := doRequest(fx.e, http.MethodPost, "/institutes", `{"name":"Sunrise Classes"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var view usecase.InstituteView
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
	assert.Equal(t, "sunriseclasses", view.Slug)

	rec = doRequest(fx.e, http.MethodPost, "/institutes", `{"name":"S"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInstituteHandler_Create_AlreadyOwned(t *testing.T) {
	fx := createTestInstituteHandler(t)
	fx.instituteUC.EXPECT().Create(mock.Anything, fx.owner, mock.Anything).Return(nil, domainerrors.ErrInstituteAlreadyOwned)

	rec := doRequest(fx.e, http.MethodPost, "/institutes", `{"name":"Second Campus"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INSTITUTE_ALREADY_OWNED", decode(t, rec).Code)
}

func TestInstituteHandler_GetMine(t *testing.T) {
	fx := createTestInstituteHandler(t)
	fx.instituteUC.EXPECT().GetMine(mock.Anything, fx.owner).Return(nil, domainerrors.ErrInstituteNotFound)

	rec := doRequest(fx.e, http.MethodGet, "/institutes/me", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "INSTITUTE_NOT_FOUND", decode(t, rec).Code)
}

func TestInstituteHandler_UpdateMineDetails(t *testing.T) {
	fx := createTestInstituteHandler(t)
	fx.instituteUC.EXPECT().
		UpdateMineDetails(mock.Anything, fx.owner, mock.MatchedBy(func(p entity.InstituteDetailsPatch) bool {
			return p.Phone != nil && *p.Phone == "9876543210" &&
				p.ShowInfoOnLogin != nil && *p.ShowInfoOnLogin &&
				p.LogoURL == nil && p.Address == nil
		})).
		Return(&usecase.InstituteView{ID: uuid.New(), Name: "Sunrise", ShowInfoOnLogin: true}, nil)

	rec := doRequest(fx.e, http.MethodPatch, "/institutes/me/details", `{"phone":"9876543210","showInfoOnLogin":true}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(fx.e, http.MethodPatch, "/institutes/me/details", `{"logoUrl":"not a url","phone":"12"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	details := string(decode(t, rec).Details)
	assert.Contains(t, details, `"field":"logoUrl"`)
	assert.Contains(t, details, `"field":"phone"`)
}

func TestInstituteHandler_GetBySlug(t *testing.T) {
	fx := createTestInstituteHandler(t)
	fx.instituteUC.EXPECT().
		GetPublicBySlug(mock.Anything, "sunriseclasses").
		Return(&usecase.PublicInstituteView{ID: uuid.New(), Name: "Sunrise", Slug: "sunriseclasses"}, nil)

	rec := doRequest(fx.e, http.MethodGet, "/institutes/slug/sunriseclasses", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "phone")
}

func TestInstituteHandler_PortalQRCode(t *testing.T) {
	fx := createTestInstituteHandler(t)
	png := []byte{0x89, 'P', 'N', 'G'}
	fx.instituteUC.EXPECT().PortalQRCode(mock.Anything, "sunriseclasses").Return(png, nil)
	fx.instituteUC.EXPECT().PortalQRCode(mock.Anything, "ghost").Return(nil, domainerrors.ErrInstituteNotFound)

	rec := doRequest(fx.e, http.MethodGet, "/institutes/slug/sunriseclasses/qr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())

	rec = doRequest(fx.e, http.MethodGet, "/institutes/slug/ghost/qr", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInstituteHandler_List(t *testing.T) {
	fx := createTestInstituteHandler(t)
	fx.instituteUC.EXPECT().ListPublic(mock.Anything).Return([]usecase.InstituteSummary{
		{ID: uuid.New(), Name: "Alpha", Slug: "alpha"},
		{ID: uuid.New(), Name: "Beta", Slug: "beta"},
	}, nil)

	rec := doRequest(fx.e, http.MethodGet, "/institutes", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var list []usecase.InstituteSummary
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &list))
	assert.Len(t, list, 2)
}
