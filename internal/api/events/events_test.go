// Package events - Test cơ chế phát event thay đổi dữ liệu.
package events

import (
	"context"
	"testing"
	"time"
)

// handlers là biến toàn cục của package nên các test dùng channel buffered
// thay vì WaitGroup để không bị ảnh hưởng bởi event của test khác.

func TestEmitDataChanged_GoiTatCaHandler(t *testing.T) {
	received := make(chan DataChangeEvent, 16)

	for i := 0; i < 2; i++ {
		OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
			select {
			case received <- e:
			default:
			}
		})
	}

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "chat_messages",
		Operation:      OpInsert,
	})

	for i := 0; i < 2; i++ {
		select {
		case e := <-received:
			if e.CollectionName != "chat_messages" || e.Operation != OpInsert {
				t.Errorf("event nhận được không đúng: %+v", e)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("chỉ nhận được %d/2 handler trong 2 giây", i)
		}
	}
}

func TestEmitDataChanged_PanicTrongHandlerKhongLanSang(t *testing.T) {
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.Operation == OpUpsert {
			panic("handler hỏng")
		}
	})

	received := make(chan struct{}, 16)
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.Operation == OpUpsert {
			select {
			case received <- struct{}{}:
			default:
			}
		}
	})

	EmitDataChanged(context.Background(), DataChangeEvent{Operation: OpUpsert})

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("panic trong một handler không được chặn handler khác")
	}
}
