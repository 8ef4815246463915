package manager

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Registry mirrors room and seat bindings into redis so a restarted
// client (or a second API node) can find where a player is seated.
//
// key layout:
//
//	kv: sj:room:{name}         -> JSON {id, created_at}
//	kv: sj:playerRoom:{player} -> room name (TTL'd, refreshed on join)
type Registry struct {
	rdb     *redis.Client
	seatTTL time.Duration
}

const defaultSeatTTL = 24 * time.Hour

func NewRegistry(rdb *redis.Client) *Registry {
	return &Registry{rdb: rdb, seatTTL: defaultSeatTTL}
}

func roomKey(name string) string {
	return fmt.Sprintf("sj:room:%s", name)
}

func playerRoomKey(player string) string {
	return fmt.Sprintf("sj:playerRoom:%s", player)
}

type roomRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Registry) SaveRoom(ctx context.Context, name, id string) error {
	data, _ := json.Marshal(roomRecord{ID: id, CreatedAt: time.Now()})
	return r.rdb.Set(ctx, roomKey(name), data, 0).Err()
}

func (r *Registry) DeleteRoom(ctx context.Context, name string) error {
	return r.rdb.Del(ctx, roomKey(name)).Err()
}

// RoomID returns the stored room id, or "" when the room is unknown.
func (r *Registry) RoomID(ctx context.Context, name string) (string, error) {
	val, err := r.rdb.Get(ctx, roomKey(name)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	var rec roomRecord
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (r *Registry) SaveSeat(ctx context.Context, player, roomName string) error {
	return r.rdb.Set(ctx, playerRoomKey(player), roomName, r.seatTTL).Err()
}

// PlayerRoom returns the room a player is bound to, or "" when unbound.
func (r *Registry) PlayerRoom(ctx context.Context, player string) (string, error) {
	val, err := r.rdb.Get(ctx, playerRoomKey(player)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// ClearSeat drops the player binding, used when a room closes.
func (r *Registry) ClearSeat(ctx context.Context, players ...string) error {
	if len(players) == 0 {
		return nil
	}
	p := r.rdb.Pipeline()
	for _, name := range players {
		p.Del(ctx, playerRoomKey(name))
	}
	_, err := p.Exec(ctx)
	return err
}
