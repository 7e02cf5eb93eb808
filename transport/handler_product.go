package transport

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
	"github.com/muhammadheryan/food-storefront/utils/errors"
)

func pathUint(r *http.Request, name string) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest).WithFields(map[string]string{name: "must be a positive integer"})
	}
	return id, nil
}

// ListProducts handler
// @Summary List available products
// @Tags Product
// @Produce json
// @Success 200 {array} model.Product
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.ListProducts(r.Context(), true)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Get product
// @Tags Product
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.Product
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ConvertProduct handler
// @Summary Convert between weight and price for a per-kg product
// @Tags Product
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body model.ConvertRequest true "Convert Request"
// @Success 200 {object} pricing.Quote
// @Router /products/{id}/convert [post]
func (s *RestHandler) ConvertProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ConvertRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.Convert(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AdminListProducts handler
// @Summary List all products including unavailable ones
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Product
// @Router /admin/products [get]
func (s *RestHandler) AdminListProducts(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.ListProducts(r.Context(), false)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateProduct handler
// @Summary Create product
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateProductRequest true "Create Product Request"
// @Success 201 {object} model.Product
// @Router /admin/products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.CreateProduct(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// UpdateProduct handler
// @Summary Update product
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body model.UpdateProductRequest true "Update Product Request"
// @Success 200 {object} model.Product
// @Router /admin/products/{id} [put]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateProductRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.UpdateProduct(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteProduct handler
// @Summary Delete product
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200
// @Router /admin/products/{id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ProductApp.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// UploadImage handler
// @Summary Upload product image (jpeg, png or webp)
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 201 {object} model.UploadImageResponse
// @Router /admin/images [post]
func (s *RestHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	// room for the multipart envelope on top of the image itself
	r.Body = http.MaxBytesReader(w, r.Body, s.ImageMaxBytes+1<<20)

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidImage).WithFields(map[string]string{"image": "file is required"}))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.ImageMaxBytes+1))
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidImage))
		return
	}

	res, err := s.ImageApp.Upload(r.Context(), &model.UploadImageRequest{
		OriginalName: header.Filename,
		Data:         data,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// GetImage handler
// @Summary Download product image
// @Tags Product
// @Produce image/jpeg,image/png,image/webp
// @Param id path string true "Image ID"
// @Success 200 {file} binary
// @Router /images/{id} [get]
func (s *RestHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	rc, info, err := s.ImageApp.Open(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", info.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, rc)
}
