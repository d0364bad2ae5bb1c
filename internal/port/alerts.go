package port

import "pharmadist/internal/domain"

// AlertBroadcaster pushes stock alerts to connected clients.
type AlertBroadcaster interface {
	Broadcast(alerts []domain.StockAlert)
}
