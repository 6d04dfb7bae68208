package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	catalog "github.com/ubuntucrafts/catalog/pkg"
	"github.com/ubuntucrafts/catalog/pkg/models"
	"github.com/ubuntucrafts/catalog/pkg/store"
)

func ListProducts(cfg *catalog.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		products, err := cfg.Products.List(r.Context())
		if err != nil {
			cfg.Logger.Errorf("Error listing products: %s", err)
			writeError(w, http.StatusInternalServerError, "Failed to list products", err.Error())
			return
		}

		cfg.Logger.Infof("Fetched %d products", len(products))
		writeJSON(w, http.StatusOK, products)
	})
}

func GetProduct(cfg *catalog.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		product, err := cfg.Products.Get(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			cfg.Logger.Warnf("Product %s not found", id)
			writeError(w, http.StatusNotFound, "Product not found", "")
			return
		}
		if err != nil {
			cfg.Logger.Errorf("Error fetching product: %s", err)
			writeError(w, http.StatusInternalServerError, "Failed to get product", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, product)
	})
}

func CreateProduct(cfg *catalog.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !cfg.DBEnv.AllowWrite {
			writeError(w, http.StatusForbidden, "Write access is disabled", "")
			return
		}

		var req models.ProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if req.ProductID == "" {
			req.ProductID = uuid.NewString()
		}

		product := &models.Product{
			ProductID: req.ProductID,
			Name:      req.Name,
			Price:     req.Price,
			Stock:     req.Stock,
		}
		if err := cfg.Products.Create(r.Context(), product); err != nil {
			cfg.Logger.Errorf("Error creating product: %s", err)
			writeError(w, http.StatusInternalServerError, "Failed to create product", err.Error())
			return
		}

		cfg.Logger.Infof("Created product %s", product.ProductID)
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Product created successfully"})
	})
}

func UpdateProduct(cfg *catalog.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !cfg.DBEnv.AllowWrite {
			writeError(w, http.StatusForbidden, "Write access is disabled", "")
			return
		}

		id := mux.Vars(r)["id"]

		var req models.ProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// Absent fields overwrite with their zero values, matching the
		// upstream API contract.
		product := &models.Product{
			ProductID: id,
			Name:      req.Name,
			Price:     req.Price,
			Stock:     req.Stock,
		}
		if err := cfg.Products.Update(r.Context(), product); err != nil {
			cfg.Logger.Errorf("Error updating product %s: %s", id, err)
			writeError(w, http.StatusInternalServerError, "Failed to update product", err.Error())
			return
		}

		cfg.Logger.Infof("Updated product %s", id)
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Product updated successfully"})
	})
}

func DeleteProduct(cfg *catalog.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !cfg.DBEnv.AllowWrite {
			writeError(w, http.StatusForbidden, "Write access is disabled", "")
			return
		}

		id := mux.Vars(r)["id"]

		if err := cfg.Products.Delete(r.Context(), id); err != nil {
			cfg.Logger.Errorf("Error deleting product %s: %s", id, err)
			writeError(w, http.StatusInternalServerError, "Failed to delete product", err.Error())
			return
		}

		cfg.Logger.Infof("Deleted product %s", id)
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Product deleted successfully"})
	})
}
