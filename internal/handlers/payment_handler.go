package handlers

import (
	"net/http"

	"messmet_backend/internal/dto"
	"messmet_backend/internal/middleware"
	"messmet_backend/internal/models"
	"messmet_backend/internal/services"
	"messmet_backend/internal/storage"
	"messmet_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService *services.PaymentService
	uploadService  *services.UploadService
}

func NewPaymentHandler(base *BaseHandler, paymentService *services.PaymentService, uploadService *services.UploadService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
		uploadService:  uploadService,
	}
}

func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		// Реквизиты публичные: оплату делают до входа в личный кабинет
		payments.GET("/config", h.GetPaymentConfig)

		authed := payments.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("", h.SubmitProof)
			authed.GET("", h.GetOwnProofs)
		}
	}

	visitor := rg.Group("/visitor")
	{
		visitor.POST("/payments", h.SubmitVisitorPayment)
	}

	admin := rg.Group("/admin/payments")
	admin.Use(middleware.AuthMiddleware(), middleware.StaffMiddleware())
	{
		admin.GET("", h.ListProofs)
		admin.POST("/:proofId/review", h.ReviewProof)
		admin.PUT("/config", h.SavePaymentConfig)
	}
}

func (h *PaymentHandler) SubmitProof(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitPaymentRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	fh, err := c.FormFile("screenshot")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("screenshot file is required"))
		return
	}

	path, err := h.uploadService.Store(c.Request.Context(), fh, storage.CategoryPayments)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)

	proof, err := h.paymentService.SubmitProof(db, userID, &req, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, proof)
}

func (h *PaymentHandler) GetOwnProofs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	proofs, err := h.paymentService.GetOwnProofs(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, proofs)
}

func (h *PaymentHandler) GetPaymentConfig(c *gin.Context) {
	db := h.GetDB(c)

	cfg, err := h.paymentService.GetPaymentConfig(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// SavePaymentConfig — реквизиты ведет персонал: get-or-create первой записи,
// QR-коды опциональны и заменяются только при загрузке нового файла.
func (h *PaymentHandler) SavePaymentConfig(c *gin.Context) {
	var req dto.SavePaymentConfigRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	gpayPath, ok := h.storeQR(c, "gpay_qr")
	if !ok {
		return
	}
	phonepePath, ok := h.storeQR(c, "phonepe_qr")
	if !ok {
		return
	}

	db := h.GetDB(c)

	cfg, err := h.paymentService.SavePaymentConfig(db, &req, gpayPath, phonepePath)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// storeQR сохраняет QR-код из необязательной части формы.
func (h *PaymentHandler) storeQR(c *gin.Context, field string) (string, bool) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", true
	}

	path, err := h.uploadService.Store(c.Request.Context(), fh, storage.CategoryQR)
	if err != nil {
		h.HandleServiceError(c, err)
		return "", false
	}
	return path, true
}

func (h *PaymentHandler) ListProofs(c *gin.Context) {
	db := h.GetDB(c)

	status := models.ProofStatus(c.DefaultQuery("status", string(models.ProofStatusPending)))

	proofs, err := h.paymentService.ListProofs(db, status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, proofs)
}

func (h *PaymentHandler) ReviewProof(c *gin.Context) {
	reviewerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReviewPaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	result, err := h.paymentService.ReviewProof(db, c.Param("proofId"), reviewerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PaymentHandler) SubmitVisitorPayment(c *gin.Context) {
	var req dto.VisitorPaymentRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	fh, err := c.FormFile("screenshot")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("screenshot file is required"))
		return
	}

	path, err := h.uploadService.Store(c.Request.Context(), fh, storage.CategoryPayments)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)

	payment, err := h.paymentService.CreateVisitorPayment(db, &req, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}
