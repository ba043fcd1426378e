package storefront

import (
	"errors"
	"net/http"
	"strconv"

	"freshmart/internal/catalog"

	"github.com/gin-gonic/gin"
)

// allCategories is the path id of the "All" chip, which clears the filter.
const allCategories = "all"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func sessionFrom(c *gin.Context) (*Session, bool) {
	v, exists := c.Get(ContextKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*Session)
	return sess, ok
}

// withSession resolves the caller's session or aborts the request.
func withSession(fn func(c *gin.Context, sess *Session)) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFrom(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session missing"})
			return
		}
		fn(c, sess)
	}
}

func (h *Handler) productExists(c *gin.Context, id string) bool {
	if _, err := h.service.Catalog().Get(id); errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// dispatchAndRedirect applies cmd and sends the browser back to the page.
func dispatchAndRedirect(c *gin.Context, sess *Session, cmd Command) {
	if err := sess.Dispatch(cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// --------------------------------------------------
// GET /?q=&category=
// --------------------------------------------------
func (h *Handler) Index() gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *Session) {
		if q, ok := c.GetQuery("q"); ok {
			_ = sess.Dispatch(ChangeSearch{Query: q})
		}
		if category, ok := c.GetQuery("category"); ok {
			if category == allCategories {
				category = ""
			}
			if category != sess.SelectedCategory() {
				_ = sess.Dispatch(SelectCategory{Category: category})
			}
		}

		c.HTML(http.StatusOK, "index.tmpl", sess.View())
	})
}

// --------------------------------------------------
// POST /search
// --------------------------------------------------
func (h *Handler) Search() gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *Session) {
		dispatchAndRedirect(c, sess, ChangeSearch{Query: c.PostForm("q")})
	})
}

// --------------------------------------------------
// POST /categories/:id/toggle
// --------------------------------------------------
func (h *Handler) ToggleCategory() gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *Session) {
		id := c.Param("id")
		if id == allCategories {
			id = ""
		}
		dispatchAndRedirect(c, sess, SelectCategory{Category: id})
	})
}

// --------------------------------------------------
// POST /cart/add/:id
// --------------------------------------------------
func (h *Handler) AddToCart() gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *Session) {
		id := c.Param("id")
		if !h.productExists(c, id) {
			return
		}
		dispatchAndRedirect(c, sess, AddToCart{ProductID: id})
	})
}

// --------------------------------------------------
// POST /cart/remove/:id
// --------------------------------------------------
func (h *Handler) RemoveFromCart() gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *Session) {
		dispatchAndRedirect(c, sess, RemoveFromCart{ProductID: c.Param("id")})
	})
}

// --------------------------------------------------
// POST /cart/quantity/:id   form: quantity=<n>
// --------------------------------------------------
func (h *Handler) UpdateQuantity() gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *Session) {
		q, err := strconv.Atoi(c.PostForm("quantity"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be an integer"})
			return
		}
		dispatchAndRedirect(c, sess, UpdateQuantity{ProductID: c.Param("id"), Quantity: q})
	})
}

// --------------------------------------------------
// POST /cart/items/:id/delete
// --------------------------------------------------
func (h *Handler) RemoveItem() gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *Session) {
		dispatchAndRedirect(c, sess, RemoveItem{ProductID: c.Param("id")})
	})
}

// --------------------------------------------------
// POST /cart/open, POST /cart/close
// --------------------------------------------------
func (h *Handler) OpenCart() gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *Session) {
		dispatchAndRedirect(c, sess, OpenCart{})
	})
}

func (h *Handler) CloseCart() gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *Session) {
		dispatchAndRedirect(c, sess, CloseCart{})
	})
}

// --------------------------------------------------
// GET /api/session
// --------------------------------------------------
func (h *Handler) GetView() gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *Session) {
		c.JSON(http.StatusOK, sess.View())
	})
}

// --------------------------------------------------
// POST /api/commands
// --------------------------------------------------
func (h *Handler) PostCommand() gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *Session) {
		var req CommandRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		cmd, err := req.Command()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if add, ok := cmd.(AddToCart); ok && !h.productExists(c, add.ProductID) {
			return
		}

		if err := sess.Dispatch(cmd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, sess.View())
	})
}
