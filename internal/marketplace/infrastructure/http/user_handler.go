package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/davidtimmons/pragmatic-architecture/internal/marketplace/domain"
)

type createUserRequestBody struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

type setBalanceRequestBody struct {
	Balance *decimal.Decimal `json:"balance" binding:"required"`
}

type UserHandler struct {
	users      domain.UserService
	summarizer domain.AccountSummarizer
}

func NewUserHandler(users domain.UserService, summarizer domain.AccountSummarizer) *UserHandler {
	return &UserHandler{
		users:      users,
		summarizer: summarizer,
	}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var body createUserRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	id, err := h.users.CreateUser(c, domain.NewUser{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
	})
	if err != nil {
		handleCoreError(c, err)
		return
	}

	respond(c, http.StatusCreated, "user created", gin.H{"id": id})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userId, err := strconv.Atoi(c.Param(UserIdKey))
	if err != nil {
		respondBadRequest(c, "invalid user id")
		return
	}

	user, err := h.users.GetUserById(c, userId)
	if err != nil {
		handleCoreError(c, err)
		return
	}

	respond(c, http.StatusOK, "user retrieved", user)
}

func (h *UserHandler) SetBalance(c *gin.Context) {
	userId, err := strconv.Atoi(c.Param(UserIdKey))
	if err != nil {
		respondBadRequest(c, "invalid user id")
		return
	}

	var body setBalanceRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if body.Balance.IsNegative() {
		respondBadRequest(c, "balance cannot be negative")
		return
	}

	if err := h.users.SetAccountBalance(c, userId, *body.Balance); err != nil {
		handleCoreError(c, err)
		return
	}

	respond(c, http.StatusOK, "balance updated", nil)
}

func (h *UserHandler) GetSummary(c *gin.Context) {
	userId, err := strconv.Atoi(c.Param(UserIdKey))
	if err != nil {
		respondBadRequest(c, "invalid user id")
		return
	}

	summary, err := h.summarizer.GetAccountSummary(c, userId)
	if err != nil {
		handleCoreError(c, err)
		return
	}

	respond(c, http.StatusOK, "account summary retrieved", summary)
}
