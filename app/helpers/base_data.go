package helpers

import (
	"net/http"

	"github.com/dtezcan/go-catalog/app/middlewares"
	"github.com/gorilla/csrf"
)

// GetBaseData fills the keys every page template expects: identity of
// the signed-in user, the cart badge count, the flash message carried in
// the query string and the CSRF token field.
func GetBaseData(r *http.Request, data map[string]interface{}) map[string]interface{} {
	if data == nil {
		data = make(map[string]interface{})
	}

	if _, exists := data["Title"]; !exists {
		data["Title"] = "Catalog"
	}

	userID := middlewares.CurrentUserID(r)
	data["IsLoggedIn"] = userID != 0
	data["UserID"] = userID
	if userName, ok := r.Context().Value(middlewares.UserNameKey).(string); ok {
		data["UserName"] = userName
	}
	data["IsAdmin"] = middlewares.HasRole(r, "Admin")

	if count, ok := r.Context().Value(middlewares.CartCountKey).(int); ok {
		data["CartCount"] = count
	} else {
		data["CartCount"] = 0
	}

	if status := r.URL.Query().Get("status"); status != "" {
		data["MessageStatus"] = status
		data["Message"] = r.URL.Query().Get("message")
	}

	data[csrf.TemplateTag] = csrf.TemplateField(r)
	return data
}
