package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thierrygoms/barberapp-server/internal/config"
	"github.com/thierrygoms/barberapp-server/internal/mailer"
	"github.com/thierrygoms/barberapp-server/internal/middleware"
)

// Standalone password-recovery service. The app posts the account email and
// gets a deep link by email; it never talks to the main API for this.
func main() {

	cfg := config.Load()
	m := mailer.New(cfg)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.POST("/recuperar-senha", func(c *gin.Context) {
		var req struct {
			Email string `json:"email"`
		}

		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "O e-mail não foi fornecido."})
			return
		}

		if err := m.SendPasswordReset(req.Email); err != nil {
			log.Println("password reset send error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao enviar e-mail"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"mensagem": "E-mail enviado com sucesso"})
	})

	log.Printf("Mailer running on %s", cfg.MailerAddr())
	if err := r.Run(cfg.MailerAddr()); err != nil {
		log.Fatalf("failed to start mailer: %v", err)
	}
}
