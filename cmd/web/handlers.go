package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"citydirectory/internal/models"
	"citydirectory/internal/validator"
)

// --- BASE HELPERS ---

func (app *application) addDefaultData(td *TemplateData, r *http.Request) *TemplateData {
	if td == nil {
		td = &TemplateData{}
	}
	td.CurrentYear = time.Now().Year()
	td.IsAuthenticated = app.isAuthenticated(r)
	td.Flash = app.popFlash(r)
	td.Categories = validator.Categories

	if td.IsAuthenticated {
		td.UserName = app.session.GetString(r.Context(), "userName")
	}
	return td
}

func (app *application) render(w http.ResponseWriter, r *http.Request, page string, data *TemplateData) {
	ts, ok := app.templateCache[page]
	if !ok {
		app.serverError(w, fmt.Errorf("the template %s does not exist", page))
		return
	}

	buf := new(bytes.Buffer)
	err := ts.ExecuteTemplate(buf, "base", app.addDefaultData(data, r))
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// --- DIRECTORY HANDLERS ---

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	cities, err := app.DB.CityNames(r.Context())
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.render(w, r, "home.page.tmpl", &TemplateData{Cities: cities})
}

func (app *application) searchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	in := validator.SearchInput{
		Query:    validator.Escape(q.Get("q")),
		City:     validator.Escape(q.Get("city")),
		Category: validator.Escape(q.Get("category")),
	}
	if errs := validator.ValidateSearch(in); len(errs) > 0 {
		app.validationError(w, "Invalid search parameters", errs)
		return
	}

	params := models.SearchParams{
		Query:    in.Query,
		City:     in.City,
		Category: in.Category,
		Sort:     q.Get("sort"),
	}
	if v := q.Get("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.MinPrice = &f
		}
	}
	if v := q.Get("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.MaxPrice = &f
		}
	}
	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.Page = n
		}
	}

	result, err := app.DB.SearchProducts(r.Context(), params)
	if err != nil {
		app.serverError(w, err)
		return
	}

	app.render(w, r, "search.page.tmpl", &TemplateData{
		Search:   result,
		Query:    in.Query,
		City:     in.City,
		Category: in.Category,
		Sort:     params.Sort,
		MinPrice: q.Get("minPrice"),
		MaxPrice: q.Get("maxPrice"),
	})
}

func (app *application) showShop(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")

	shop, err := app.DB.IncShopViews(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.notFound(w)
			return
		}
		app.serverError(w, err)
		return
	}

	products, err := app.DB.ProductsByShop(r.Context(), shop.ID)
	if err != nil {
		app.serverError(w, err)
		return
	}

	app.render(w, r, "shop.page.tmpl", &TemplateData{Shop: shop, ShopProducts: products})
}

func (app *application) showProduct(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")

	product, err := app.DB.IncProductViews(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.notFound(w)
			return
		}
		app.serverError(w, err)
		return
	}

	shop, err := app.DB.ShopSummaryByID(r.Context(), product.ShopID)
	if err != nil && !errors.Is(err, models.ErrNoRecord) {
		app.serverError(w, err)
		return
	}

	app.render(w, r, "product.page.tmpl", &TemplateData{Product: product, ProductShop: shop})
}

// --- AUTH HANDLERS ---

func (app *application) registerForm(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, "register.page.tmpl", nil)
}

func (app *application) registerUser(w http.ResponseWriter, r *http.Request) {
	name := validator.Escape(r.FormValue("name"))
	email := validator.Escape(r.FormValue("email"))
	password := r.FormValue("password")
	confirm := r.FormValue("confirm")

	if name == "" || email == "" || password == "" || confirm == "" {
		app.flash(r, "error", "All fields are required")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}
	if password != confirm {
		app.flash(r, "error", "Passwords do not match")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	user, err := app.users.Register(r.Context(), name, email, password)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			app.flash(r, "error", "Email already registered")
		} else {
			app.errorLog.Println("register:", err)
			app.flash(r, "error", "Registration failed")
		}
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	if err := app.loginSession(r, user); err != nil {
		app.serverError(w, err)
		return
	}
	app.flash(r, "success", "Registered and logged in")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) loginForm(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, "login.page.tmpl", nil)
}

func (app *application) loginUser(w http.ResponseWriter, r *http.Request) {
	email := validator.Escape(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		app.flash(r, "error", "Email and password required")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	user, err := app.users.Authenticate(r.Context(), email, password)
	if err != nil {
		// Same message for unknown email and wrong password.
		if errors.Is(err, models.ErrInvalidCredentials) {
			app.flash(r, "error", "Invalid credentials")
		} else {
			app.errorLog.Println("login:", err)
			app.flash(r, "error", "Login failed")
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := app.loginSession(r, user); err != nil {
		app.serverError(w, err)
		return
	}
	app.flash(r, "success", "Logged in successfully")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) loginSession(r *http.Request, user *models.User) error {
	if err := app.session.RenewToken(r.Context()); err != nil {
		return err
	}
	app.session.Put(r.Context(), "userID", user.ID.Hex())
	app.session.Put(r.Context(), "userName", user.Name)
	app.session.Put(r.Context(), "userEmail", user.Email)
	return nil
}

func (app *application) logoutUser(w http.ResponseWriter, r *http.Request) {
	if err := app.session.Destroy(r.Context()); err != nil {
		app.serverError(w, err)
		return
	}
	app.flash(r, "success", "Logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) showAccount(w http.ResponseWriter, r *http.Request) {
	id := app.session.GetString(r.Context(), "userID")

	user, err := app.users.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		app.serverError(w, err)
		return
	}

	app.render(w, r, "account.page.tmpl", &TemplateData{User: user})
}

// --- CITY HANDLERS ---

func (app *application) createCityForm(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, "city_create.page.tmpl", nil)
}

func (app *application) createCity(w http.ResponseWriter, r *http.Request) {
	name := validator.Escape(r.FormValue("name"))
	if name == "" {
		app.flash(r, "error", "City name is required")
		http.Redirect(w, r, "/cities/new", http.StatusSeeOther)
		return
	}

	err := app.DB.CreateCity(r.Context(), name)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateCity) {
			app.flash(r, "error", "City already exists")
		} else {
			app.errorLog.Println("add city:", err)
			app.flash(r, "error", "Failed to add city")
		}
		http.Redirect(w, r, "/cities/new", http.StatusSeeOther)
		return
	}

	app.flash(r, "success", "City added successfully")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) healthcheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "available"})
}
