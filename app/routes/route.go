package routes

import (
	"encoding/base64"
	"net/http"

	"github.com/dtezcan/go-catalog/app/configs"
	"github.com/dtezcan/go-catalog/app/handlers"
	"github.com/dtezcan/go-catalog/app/helpers"
	"github.com/dtezcan/go-catalog/app/middlewares"
	"github.com/dtezcan/go-catalog/app/models"
	"github.com/dtezcan/go-catalog/app/services"
	"github.com/dtezcan/go-catalog/app/utils/files"
	"github.com/dtezcan/go-catalog/app/utils/renderer"
	"github.com/dtezcan/go-catalog/app/utils/sessions"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// NewRouter wires the full HTTP surface: services over the database,
// handlers over the services, session and CSRF protection around the
// lot.
func NewRouter(db *gorm.DB) (http.Handler, error) {
	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		return nil, err
	}

	render := renderer.New()
	validate := helpers.NewValidator()
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)
	cartStore := sessions.NewCookieCartStore(keys.AuthKey, keys.EncKey)
	fileService := files.NewFileService(configs.LoadENV.UploadDir)

	categoryService := services.NewCategoryService(db)
	productService := services.NewProductService(db)
	storeService := services.NewStoreService(db)
	countryService := services.NewCountryService(db)
	cityService := services.NewCityService(db, fileService)
	groupService := services.NewGroupService(db)
	roleService := services.NewRoleService(db)
	userService := services.NewUserService(db, sessionStore)
	cartService := services.NewCartService(cartStore, productService)
	locationService := services.NewLocationService(db)

	homeHandler := handlers.NewHomeHandler(render, categoryService, productService)
	categoryHandler := handlers.NewCategoryHandler(render, validate, categoryService)
	productHandler := handlers.NewProductHandler(render, validate, productService, categoryService, storeService)
	storeHandler := handlers.NewStoreHandler(render, validate, storeService)
	countryHandler := handlers.NewCountryHandler(render, validate, countryService)
	cityHandler := handlers.NewCityHandler(render, validate, cityService, countryService)
	groupHandler := handlers.NewGroupHandler(render, validate, groupService)
	roleHandler := handlers.NewRoleHandler(render, validate, roleService)
	userHandler := handlers.NewUserHandler(render, validate, userService, groupService, countryService, cityService, roleService)
	authHandler := handlers.NewAuthHandler(render, validate, userService)
	cartHandler := handlers.NewCartHandler(render, cartService)
	locationHandler := handlers.NewLocationHandler(render, locationService)

	router := mux.NewRouter()

	router.Use(middlewares.MethodOverrideMiddleware)
	router.Use(middlewares.CurrentUserMiddleware(sessionStore))
	router.Use(middlewares.CartCountMiddleware(cartStore))

	router.PathPrefix("/files/").Handler(
		http.StripPrefix("/files/", http.FileServer(http.Dir(configs.LoadENV.UploadDir))))

	router.HandleFunc("/", homeHandler.Home).Methods("GET")

	router.HandleFunc("/login", authHandler.LoginPage).Methods("GET")
	router.HandleFunc("/login", authHandler.LoginPost).Methods("POST")
	router.HandleFunc("/logout", authHandler.LogoutPost).Methods("POST")
	router.HandleFunc("/register", authHandler.RegisterPage).Methods("GET")
	router.HandleFunc("/register", authHandler.RegisterPost).Methods("POST")

	// read views open to any visitor
	router.HandleFunc("/categories", categoryHandler.Index).Methods("GET")
	router.HandleFunc("/categories/details/{id:[0-9]+}", categoryHandler.Details).Methods("GET")
	router.HandleFunc("/products", productHandler.Index).Methods("GET")
	router.HandleFunc("/products/details/{id:[0-9]+}", productHandler.Details).Methods("GET")
	router.HandleFunc("/stores", storeHandler.Index).Methods("GET")
	router.HandleFunc("/stores/details/{id:[0-9]+}", storeHandler.Details).Methods("GET")
	router.HandleFunc("/countries", countryHandler.Index).Methods("GET")
	router.HandleFunc("/countries/details/{id:[0-9]+}", countryHandler.Details).Methods("GET")
	router.HandleFunc("/cities", cityHandler.Index).Methods("GET")
	router.HandleFunc("/cities/details/{id:[0-9]+}", cityHandler.Details).Methods("GET")
	router.HandleFunc("/cities/by-country/{id:[0-9]+}", cityHandler.ByCountry).Methods("GET")
	router.HandleFunc("/locations", locationHandler.Index).Methods("GET")

	// cart routes need a signed-in user
	cart := router.PathPrefix("/cart").Subrouter()
	cart.Use(middlewares.RequireAuth)
	cart.HandleFunc("", cartHandler.Index).Methods("GET")
	cart.HandleFunc("/add/{id:[0-9]+}", cartHandler.AddPost).Methods("POST")
	cart.HandleFunc("/remove/{id:[0-9]+}", cartHandler.RemovePost).Methods("POST")
	cart.HandleFunc("/clear", cartHandler.ClearPost).Methods("POST")

	// mutating catalog and reference data is admin territory
	admin := router.NewRoute().Subrouter()
	admin.Use(middlewares.RequireRole(models.RoleAdmin))

	registerCRUD(admin, "/categories", crudHandlers{
		CreatePage: categoryHandler.CreatePage, CreatePost: categoryHandler.CreatePost,
		EditPage: categoryHandler.EditPage, EditPost: categoryHandler.EditPost,
		DeletePage: categoryHandler.DeletePage, DeletePost: categoryHandler.DeletePost,
	})
	registerCRUD(admin, "/products", crudHandlers{
		CreatePage: productHandler.CreatePage, CreatePost: productHandler.CreatePost,
		EditPage: productHandler.EditPage, EditPost: productHandler.EditPost,
		DeletePage: productHandler.DeletePage, DeletePost: productHandler.DeletePost,
	})
	registerCRUD(admin, "/stores", crudHandlers{
		CreatePage: storeHandler.CreatePage, CreatePost: storeHandler.CreatePost,
		EditPage: storeHandler.EditPage, EditPost: storeHandler.EditPost,
		DeletePage: storeHandler.DeletePage, DeletePost: storeHandler.DeletePost,
	})
	registerCRUD(admin, "/countries", crudHandlers{
		CreatePage: countryHandler.CreatePage, CreatePost: countryHandler.CreatePost,
		EditPage: countryHandler.EditPage, EditPost: countryHandler.EditPost,
		DeletePage: countryHandler.DeletePage, DeletePost: countryHandler.DeletePost,
	})
	registerCRUD(admin, "/cities", crudHandlers{
		CreatePage: cityHandler.CreatePage, CreatePost: cityHandler.CreatePost,
		EditPage: cityHandler.EditPage, EditPost: cityHandler.EditPost,
		DeletePage: cityHandler.DeletePage, DeletePost: cityHandler.DeletePost,
	})
	admin.HandleFunc("/cities/delete-image/{id:[0-9]+}", cityHandler.DeleteImagePost).Methods("POST")
	registerCRUD(admin, "/groups", crudHandlers{
		CreatePage: groupHandler.CreatePage, CreatePost: groupHandler.CreatePost,
		EditPage: groupHandler.EditPage, EditPost: groupHandler.EditPost,
		DeletePage: groupHandler.DeletePage, DeletePost: groupHandler.DeletePost,
	})
	registerCRUD(admin, "/roles", crudHandlers{
		CreatePage: roleHandler.CreatePage, CreatePost: roleHandler.CreatePost,
		EditPage: roleHandler.EditPage, EditPost: roleHandler.EditPost,
		DeletePage: roleHandler.DeletePage, DeletePost: roleHandler.DeletePost,
	})
	admin.HandleFunc("/groups", groupHandler.Index).Methods("GET")
	admin.HandleFunc("/groups/details/{id:[0-9]+}", groupHandler.Details).Methods("GET")
	admin.HandleFunc("/roles", roleHandler.Index).Methods("GET")
	admin.HandleFunc("/roles/details/{id:[0-9]+}", roleHandler.Details).Methods("GET")
	admin.HandleFunc("/users", userHandler.Index).Methods("GET")
	admin.HandleFunc("/users/details/{id:[0-9]+}", userHandler.Details).Methods("GET")
	registerCRUD(admin, "/users", crudHandlers{
		CreatePage: userHandler.CreatePage, CreatePost: userHandler.CreatePost,
		EditPage: userHandler.EditPage, EditPost: userHandler.EditPost,
		DeletePage: userHandler.DeletePage, DeletePost: userHandler.DeletePost,
	})

	if configs.LoadENV.AppEnv == "development" {
		databaseHandler := handlers.NewDatabaseHandler(db)
		router.HandleFunc("/seed-db", databaseHandler.SeedPost).Methods("GET", "POST")
	}

	csrfKey, err := base64.URLEncoding.DecodeString(configs.LoadENV.CSRFKey)
	if err != nil || len(csrfKey) == 0 {
		csrfKey = keys.AuthKey
	}
	protect := csrf.Protect(csrfKey,
		csrf.Secure(configs.LoadENV.AppEnv != "development"),
		csrf.Path("/"),
	)
	return protect(router), nil
}

type crudHandlers struct {
	CreatePage http.HandlerFunc
	CreatePost http.HandlerFunc
	EditPage   http.HandlerFunc
	EditPost   http.HandlerFunc
	DeletePage http.HandlerFunc
	DeletePost http.HandlerFunc
}

func registerCRUD(router *mux.Router, prefix string, h crudHandlers) {
	router.HandleFunc(prefix+"/create", h.CreatePage).Methods("GET")
	router.HandleFunc(prefix+"/create", h.CreatePost).Methods("POST")
	router.HandleFunc(prefix+"/edit/{id:[0-9]+}", h.EditPage).Methods("GET")
	router.HandleFunc(prefix+"/edit/{id:[0-9]+}", h.EditPost).Methods("POST")
	router.HandleFunc(prefix+"/delete/{id:[0-9]+}", h.DeletePage).Methods("GET")
	router.HandleFunc(prefix+"/delete/{id:[0-9]+}", h.DeletePost).Methods("POST")
}
