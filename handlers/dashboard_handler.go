package handlers

import (
	"errors"
	"fmt"
	"log"
	"time"

	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	configs "temple-backend/configs"
	"temple-backend/models"
	"temple-backend/websocket"
)

// GetDashboardStats aggregates the numbers the dashboard header shows.
func GetDashboardStats(c *fiber.Ctx) error {
	list, err := bookings.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load bookings"})
	}

	today := time.Now().Format("2006-01-02")
	var pending, completed, todays int
	for _, b := range list {
		switch b.Status {
		case models.StatusPending:
			pending++
		case models.StatusCompleted:
			completed++
		}
		if b.Date == today {
			todays++
		}
	}

	var lunchTotal, lunchCheckedIn, lunchHeadcount int
	if entries, err := lunch.List(); err == nil {
		lunchTotal = len(entries)
		for _, e := range entries {
			if e.CheckedIn {
				lunchCheckedIn++
				lunchHeadcount += e.Count
			}
		}
	}

	return c.JSON(fiber.Map{
		"totalBookings":     len(list),
		"pendingBookings":   pending,
		"completedBookings": completed,
		"todaysSevas":       todays,
		"lunchTotal":        lunchTotal,
		"lunchCheckedIn":    lunchCheckedIn,
		"lunchHeadcount":    lunchHeadcount,
	})
}

// ServeWs upgrades a dashboard session. The client authenticates with its JWT
// as the first frame, then receives booking events until it disconnects.
func ServeWs(c *websocketcontrib.Conn) {
	type AuthMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}
	var authMsg AuthMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		log.Printf("WebSocket auth failed: invalid or missing auth message: %v", err)
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseToken(authMsg.Token)
	if err != nil {
		log.Printf("WebSocket auth failed: invalid token: %v", err)
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}
	role, _ := claims["role"].(string)
	if role != models.RoleAdmin && role != models.RoleVolunteer {
		_ = c.WriteJSON(fiber.Map{"error": "Staff access required"})
		c.Close()
		return
	}

	client := &websocket.Client{ID: uuid.New(), Conn: c}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
		c.Close()
	}()

	// The dashboard only listens; the read loop just detects disconnects.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseAbnormalClosure) {
				log.Printf("WebSocket closed for client %s: %v", client.ID, err)
			} else {
				log.Printf("WebSocket read error for client %s: %v", client.ID, err)
			}
			break
		}
	}
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(configs.Config("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
