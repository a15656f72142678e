package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"tableside/internal/ai"
	"tableside/internal/domain"
	"tableside/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Menu        service.MenuServiceInterface
	Inventory   service.InventoryServiceInterface
	Orders      service.OrderServiceInterface
	Composer    service.ComposerServiceInterface
	Payments    service.PaymentServiceInterface
	Occupancy   service.OccupancyStore
	Publisher   service.EventPublisher
	Generator   ai.IngredientGenerator
	Extractor   ai.OrderExtractor
	MenuCSVPath string
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menuCsv", h.getMenuCsv).Methods("GET")
	r.HandleFunc("/api/uploadMenu", h.uploadMenu).Methods("POST")

	r.HandleFunc("/api/users/{userId}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/users/{userId}/menu", h.replaceMenu).Methods("PUT")
	r.HandleFunc("/api/users/{userId}/menu/dishes", h.addDish).Methods("POST")

	r.HandleFunc("/api/users/{userId}/inventory", h.getInventory).Methods("GET")
	r.HandleFunc("/api/users/{userId}/inventory", h.addInventoryItem).Methods("POST")
	r.HandleFunc("/api/users/{userId}/inventory/usage", h.recordUsage).Methods("POST")

	r.HandleFunc("/api/users/{userId}/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/users/{userId}/orders/pending", h.getPendingOrders).Methods("GET")
	r.HandleFunc("/api/users/{userId}/orders/{orderId}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/users/{userId}/orders/{orderId}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/users/{userId}/orders/{orderId}/payment", h.processPayment).Methods("POST")

	r.HandleFunc("/api/users/{userId}/tables", h.getTables).Methods("GET")

	r.HandleFunc("/api/ai/ingredients", h.generateIngredients).Methods("POST")
	r.HandleFunc("/api/ai/extract-order", h.extractOrder).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "tableside",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"error": message})
}

// isValidationError groups the composer/payment sentinels that mean "fix the
// request", as opposed to something going wrong on our side.
func isValidationError(err error) bool {
	for _, sentinel := range []error{
		service.ErrMissingUser,
		service.ErrEmptyOrder,
		service.ErrMissingTable,
		service.ErrMissingDeliveryDetails,
		service.ErrMissingPickupDetails,
		service.ErrInvalidOrderType,
		service.ErrInvalidPaymentMethod,
		service.ErrNegativeTip,
		service.ErrInsufficientCash,
		service.ErrOrderNotPending,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func (h *Handler) getMenuCsv(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(h.MenuCSVPath)
	if err != nil {
		writeError(w, http.StatusNotFound, "Menu CSV not found")
		return
	}
	dishes, _, err := service.ParseMenuCSV(data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"menu": dishes})
}

func (h *Handler) uploadMenu(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID   string `json:"userId"`
		FileName string `json:"fileName"`
		Content  string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.UserID == "" || payload.Content == "" {
		writeError(w, http.StatusBadRequest, "userId and content are required")
		return
	}

	raw, err := base64.StdEncoding.DecodeString(payload.Content)
	if err != nil {
		writeError(w, http.StatusBadRequest, "content is not valid base64")
		return
	}

	dishes, repaired, err := service.ParseMenuCSV(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"shouldImport":      false,
			"partialOrRepaired": false,
			"error":             err.Error(),
		})
		return
	}

	if err := h.Menu.Replace(payload.UserID, dishes); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if h.Publisher != nil {
		_ = h.Publisher.PublishEvent(r.Context(), domain.KafkaMessage{
			Type:      domain.EventMenuImported,
			UserID:    payload.UserID,
			DishCount: len(dishes),
			Repaired:  repaired,
			Timestamp: time.Now(),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"shouldImport":      true,
		"partialOrRepaired": repaired,
		"menu":              dishes,
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	dishes, err := h.Menu.List(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) replaceMenu(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var dishes []domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dishes); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Menu.Replace(userID, dishes); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) addDish(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var payload struct {
		Name        string                        `json:"name"`
		Ingredients []domain.IngredientSuggestion `json:"ingredients"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Name == "" {
		writeError(w, http.StatusBadRequest, "dish name is required")
		return
	}
	dish, err := h.Menu.AddDish(userID, payload.Name, payload.Ingredients)
	if err != nil {
		if errors.Is(err, service.ErrMissingUser) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, dish)
}

func (h *Handler) getInventory(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	items, err := h.Inventory.List(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) addInventoryItem(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var item domain.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if item.Name == "" {
		writeError(w, http.StatusBadRequest, "item name is required")
		return
	}
	added, err := h.Inventory.AddIfNotExists(userID, item)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemExists):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrMissingUser):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

func (h *Handler) recordUsage(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var payload struct {
		ItemName string  `json:"itemName"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Inventory.RecordUsage(userID, payload.ItemName, payload.Quantity, payload.Unit); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var req service.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	order, err := h.Composer.PlaceOrder(r.Context(), userID, req)
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getPendingOrders(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	orders, err := h.Orders.ListPending(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	order, err := h.Orders.Get(vars["userId"], vars["orderId"])
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	qr, err := h.Orders.QRCode(vars["userId"], vars["orderId"])
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) processPayment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req service.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.OrderID = vars["orderId"]
	result, err := h.Payments.Process(r.Context(), vars["userId"], req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, "Order not found")
		case isValidationError(err):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getTables(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	occupied, err := h.Occupancy.ListOccupied(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"occupied": occupied})
}

func (h *Handler) generateIngredients(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		DishName         string `json:"dishName"`
		NumberOfServings int    `json:"numberOfServings"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.DishName == "" {
		writeError(w, http.StatusBadRequest, "dishName is required")
		return
	}
	if payload.NumberOfServings <= 0 {
		payload.NumberOfServings = 1
	}
	ingredients, err := h.Generator.GenerateIngredientsList(r.Context(), payload.DishName, payload.NumberOfServings)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ingredients": ingredients})
}

func (h *Handler) extractOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID     string `json:"userId"`
		Transcript string `json:"transcript"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Transcript == "" {
		writeError(w, http.StatusBadRequest, "transcript is required")
		return
	}
	extracted, err := h.Extractor.ExtractOrderFromText(r.Context(), payload.Transcript)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	response := map[string]interface{}{"extracted": extracted}
	if payload.UserID != "" {
		candidates, err := h.Composer.MatchItems(payload.UserID, extracted.Items)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		response["items"] = candidates
	}
	writeJSON(w, http.StatusOK, response)
}
