package gateway

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	SessionName = "zyno_session"
	shopperKey  = "shopper_id"
)

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		lvl := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			lvl = slog.LevelError
		}
		log.Log(c.Request.Context(), lvl, "http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.String("shopper_id", c.GetString(shopperKey)),
		)
	}
}

// shopperSession gives every browser a stable shopper id kept in a signed
// cookie. A cookie that no longer decodes is replaced with a fresh id.
func shopperSession(store sessions.Store, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := store.Get(c.Request, SessionName)
		if err != nil {
			log.Debug("session cookie rejected", slog.Any("err", err))
		}
		if sess == nil {
			sess = sessions.NewSession(store, SessionName)
		}

		id, _ := sess.Values[shopperKey].(string)
		if id == "" {
			id = uuid.NewString()
			sess.Values[shopperKey] = id
			if err := sess.Save(c.Request, c.Writer); err != nil {
				fail(c, log, err)
				return
			}
		}

		c.Set(shopperKey, id)
		c.Next()
	}
}

func shopperID(c *gin.Context) string {
	return c.GetString(shopperKey)
}

// NewCookieStore builds the cookie store the shopper session lives in.
func NewCookieStore(key []byte, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore(key)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode
	store.Options.MaxAge = 30 * 24 * 60 * 60
	return store
}
