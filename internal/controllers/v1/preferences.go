package v1

import (
	"net/http"

	"github.com/fundflow/backend/internal/httputil"
	"github.com/fundflow/backend/internal/models"
	"github.com/fundflow/backend/internal/preferences"
	"github.com/gin-gonic/gin"
)

type PreferencesResponse struct {
	Data  *models.Preferences `json:"data"`                                                      // Preferences of the user
	Error *string             `json:"error" example:"the user query parameter must be set"` // The error, if any occurred
}

// RegisterPreferenceRoutes registers the routes for preferences with
// the RouterGroup that is passed.
func (co Controller) RegisterPreferenceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPreferences)
	r.GET("", co.GetPreferences)
	r.PATCH("", co.UpdatePreferences)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Preferences
// @Success		204
// @Router			/v1/preferences [options]
func OptionsPreferences(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get preferences
// @Description	Returns the period preferences of a user. Users without preferences get the defaults, which are stored on first access.
// @Tags			Preferences
// @Produce		json
// @Success		200		{object}	PreferencesResponse
// @Failure		400		{object}	PreferencesResponse
// @Failure		500		{object}	PreferencesResponse
// @Param			user	query		string	true	"ID of the user"
// @Router			/v1/preferences [get]
func (co Controller) GetPreferences(c *gin.Context) {
	user, err := userID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferencesResponse{Error: &s})
		return
	}

	p, err := co.Preferences.Get(c.Request.Context(), user)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferencesResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, PreferencesResponse{Data: &p})
}

// @Summary		Update preferences
// @Description	Changes the period preferences of a user. Fields that are not sent are left unchanged. Days must be between 1 and 31.
// @Tags			Preferences
// @Produce		json
// @Success		200			{object}	PreferencesResponse
// @Failure		400			{object}	PreferencesResponse
// @Failure		500			{object}	PreferencesResponse
// @Param			user		query		string				true	"ID of the user"
// @Param			preferences	body		preferences.Patch	true	"Preferences"
// @Router			/v1/preferences [patch]
func (co Controller) UpdatePreferences(c *gin.Context) {
	user, err := userID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferencesResponse{Error: &s})
		return
	}

	var patch preferences.Patch
	err = httputil.BindData(c, &patch)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferencesResponse{Error: &s})
		return
	}

	p, err := co.Preferences.Update(c.Request.Context(), user, patch)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferencesResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, PreferencesResponse{Data: &p})
}
