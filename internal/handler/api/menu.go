package api

import (
	"net/http"

	resdto "github.com/Atsu2017-hub/web-ramen/internal/handler/dto/response"
	"github.com/Atsu2017-hub/web-ramen/internal/handler/httperr"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuQueries queries.MenuQueries
}

func NewMenuHandler(menuQueries queries.MenuQueries) *MenuHandler {
	return &MenuHandler{menuQueries: menuQueries}
}

// @Summary List available menus
// @Description List all menu items currently available for ordering
// @Tags menus
// @Produce json
// @Success 200 {array} resdto.MenuResponse
// @Failure 500 {object} httperr.Response
// @Router /menus [get]
func (h *MenuHandler) ListMenus(c *gin.Context) {
	views, err := h.menuQueries.ListAvailable(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load menus", nil)
		return
	}

	resp, err := resdto.FromMenuViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load menus", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
