package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/food-storefront/model"
)

// CreateCart handler
// @Summary Create an empty cart
// @Tags Cart
// @Produce json
// @Success 201 {object} model.CartResponse
// @Router /carts [post]
func (s *RestHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	res, err := s.CartApp.CreateCart(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// GetCart handler
// @Summary Get cart
// @Tags Cart
// @Produce json
// @Param cartID path string true "Cart ID"
// @Success 200 {object} model.CartResponse
// @Router /carts/{cartID} [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	res, err := s.CartApp.GetCart(r.Context(), mux.Vars(r)["cartID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AddCartItem handler
// @Summary Add a product to the cart
// @Description Unit products merge by product id; weight products always add a new line.
// @Tags Cart
// @Accept json
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param request body model.AddCartItemRequest true "Add Item Request"
// @Success 200 {object} model.CartResponse
// @Router /carts/{cartID}/items [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req model.AddCartItemRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.AddItem(r.Context(), mux.Vars(r)["cartID"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RemoveCartLine handler
// @Summary Remove a cart line by its identity
// @Tags Cart
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param lineID path string true "Line identity"
// @Success 200 {object} model.CartResponse
// @Router /carts/{cartID}/lines/{lineID} [delete]
func (s *RestHandler) RemoveCartLine(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := s.CartApp.RemoveLine(r.Context(), vars["cartID"], vars["lineID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateCartQuantity handler
// @Summary Set the quantity of a unit product; zero or less removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param productID path int true "Product ID"
// @Param request body model.UpdateQuantityRequest true "Quantity"
// @Success 200 {object} model.CartResponse
// @Router /carts/{cartID}/products/{productID}/quantity [put]
func (s *RestHandler) UpdateCartQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := pathUint(r, "productID")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateQuantityRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.UpdateQuantity(r.Context(), mux.Vars(r)["cartID"], productID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RemoveLastWeightLine handler
// @Summary Remove the most recently added weight line of a product
// @Tags Cart
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param productID path int true "Product ID"
// @Success 200 {object} model.CartResponse
// @Router /carts/{cartID}/products/{productID}/weight-lines/last [delete]
func (s *RestHandler) RemoveLastWeightLine(w http.ResponseWriter, r *http.Request) {
	productID, err := pathUint(r, "productID")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.RemoveLastWeightLine(r.Context(), mux.Vars(r)["cartID"], productID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RepeatWeightLine handler
// @Summary Add another line identical to the latest weight line of a product
// @Tags Cart
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param productID path int true "Product ID"
// @Success 200 {object} model.CartResponse
// @Router /carts/{cartID}/products/{productID}/weight-lines/repeat [post]
func (s *RestHandler) RepeatWeightLine(w http.ResponseWriter, r *http.Request) {
	productID, err := pathUint(r, "productID")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.AddSameWeightLine(r.Context(), mux.Vars(r)["cartID"], productID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
