package handlers

import (
	"encoding/json"
	"net/http"

	catalog "github.com/ubuntucrafts/catalog/pkg"
	"github.com/ubuntucrafts/catalog/pkg/models"
)

func Checkout(cfg *catalog.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !cfg.DBEnv.AllowWrite {
			writeError(w, http.StatusForbidden, "Write access is disabled", "")
			return
		}

		var req models.CheckoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if req.UserID == "" || len(req.Items) == 0 {
			writeError(w, http.StatusBadRequest, "Checkout failed", "user_id and items are required")
			return
		}

		orderID, err := cfg.Orders.Checkout(r.Context(), req.UserID, req.Items)
		if err != nil {
			cfg.Logger.Errorf("Checkout failed: %s", err)
			writeError(w, http.StatusInternalServerError, "Checkout failed", err.Error())
			return
		}

		cfg.Logger.Infof("Checkout successful for order %d", orderID)
		writeJSON(w, http.StatusOK, models.CheckoutResponse{
			OrderID: orderID,
			Message: "Checkout successful",
		})
	})
}
