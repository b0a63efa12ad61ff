package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/DhaatuTheGamer/seamless-qr-dining/models"
	"github.com/DhaatuTheGamer/seamless-qr-dining/utils"
)

type AuthController struct {
	DB *gorm.DB
	// OTPAcceptCode is the code the simulated SMS flow accepts. There is no
	// real delivery; any phone gets the same code.
	OTPAcceptCode string
}

func NewAuthController(db *gorm.DB, otpAcceptCode string) *AuthController {
	return &AuthController{DB: db, OTPAcceptCode: otpAcceptCode}
}

// RequestOTP -> pretend to send an OTP to the customer's phone
func (ac *AuthController) RequestOTP(c *gin.Context) {
	type ReqBody struct {
		Phone string `json:"phone" binding:"required"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if len(body.Phone) < 10 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("please enter a valid phone number"))
		return
	}

	utils.InfoLogger.Printf("OTP requested for phone ending %s", body.Phone[len(body.Phone)-4:])
	utils.RespondJSON(c, http.StatusOK, "OTP sent", nil)
}

// VerifyOTP -> check the code and issue a customer session token for the
// scanned table
func (ac *AuthController) VerifyOTP(c *gin.Context) {
	type ReqBody struct {
		Phone string `json:"phone" binding:"required"`
		Name  string `json:"name"`
		OTP   string `json:"otp" binding:"required"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.OTP != ac.OTPAcceptCode {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid OTP"))
		return
	}

	name := body.Name
	if name == "" {
		name = "Customer"
	}

	token, err := utils.GenerateCustomerToken(name, body.Phone, c.Param("table_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Logged in", gin.H{
		"token":    token,
		"name":     name,
		"table_id": c.Param("table_id"),
	})
}

// GuestLogin -> session token without a phone number
func (ac *AuthController) GuestLogin(c *gin.Context) {
	token, err := utils.GenerateCustomerToken("Guest", "", c.Param("table_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Logged in as guest", gin.H{
		"token":    token,
		"name":     "Guest",
		"table_id": c.Param("table_id"),
	})
}

// RegisterStaff -> create a staff account
func (ac *AuthController) RegisterStaff(c *gin.Context) {
	type ReqBody struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required"` // staff or admin
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Role != utils.RoleStaff && body.Role != utils.RoleAdmin {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown role"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Name:     body.Name,
		Email:    body.Email,
		Password: string(hashed),
		Role:     body.Role,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New staff registered: %s (role=%s)", user.Email, user.Role)
	utils.RespondJSON(c, http.StatusCreated, "Staff registered", gin.H{
		"user_id": user.ID,
	})
}

// LoginStaff -> verify credentials, return a staff JWT
func (ac *AuthController) LoginStaff(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateStaffToken(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login success", gin.H{
		"token": token,
		"role":  user.Role,
	})
}
