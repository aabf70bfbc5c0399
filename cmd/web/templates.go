package main

import (
	"html/template"
	"path/filepath"

	"citydirectory/internal/models"
)

type Flash struct {
	Type    string
	Message string
}

type TemplateData struct {
	CurrentYear     int
	IsAuthenticated bool
	UserName        string
	Flash           *Flash

	Cities       []string
	Shop         *models.Shop
	ShopProducts []*models.Product
	Product      *models.Product
	ProductShop  *models.ShopSummary
	Search       *models.SearchResult
	User         *models.User

	// Echoed search form values.
	Query    string
	City     string
	Category string
	Sort     string
	MinPrice string
	MaxPrice string

	Categories []string
}

func newTemplateCache() (map[string]*template.Template, error) {
	cache := make(map[string]*template.Template)

	pages, err := filepath.Glob("./ui/html/*.page.tmpl")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := filepath.Base(page)

		ts, err := template.ParseFiles("./ui/html/base.layout.tmpl")
		if err != nil {
			return nil, err
		}

		partials, err := filepath.Glob("./ui/html/*.partial.tmpl")
		if err != nil {
			return nil, err
		}

		if len(partials) > 0 {
			ts, err = ts.ParseGlob("./ui/html/*.partial.tmpl")
			if err != nil {
				return nil, err
			}
		}

		ts, err = ts.ParseFiles(page)
		if err != nil {
			return nil, err
		}

		cache[name] = ts
	}

	return cache, nil
}
