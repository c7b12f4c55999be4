// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-delta-sync/models"
)

func TestInitHasherPoolAndHash(t *testing.T) {
	key := "secret-key"
	InitHasherPool(key)

	data := []byte("test-data")

	sum1 := Hash(data)
	sum2 := Hash(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}

	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	// verify against direct HMAC computation
	h := hmac.New(sha256.New, []byte(key))
	h.Write(data)
	expected := h.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

const testHashKey = "test-secret-key"

func TestHash_WithRealPayload(t *testing.T) {
	InitHasherPool(testHashKey)

	payload := models.Topic{
		ID:        "topic-1",
		Title:     "Distributed Systems",
		Summary:   "Consensus, replication and clocks",
		UpdatedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}

	// Сериализуем сущность в JSON (как это делает middleware)
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	got := hex.EncodeToString(Hash(payloadBytes))

	// Эталонный хеш считаем напрямую через crypto/hmac
	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(payloadBytes)
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("Hash mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

// TestHash_DifferentPayloads проверяет что разные сущности дают разные хеши
func TestHash_DifferentPayloads(t *testing.T) {
	InitHasherPool(testHashKey)

	payload1 := models.Author{
		ID:   "author-1",
		Name: "Leslie Lamport",
	}

	payload2 := models.Author{
		ID:   "author-2",
		Name: "Barbara Liskov",
	}

	bytes1, _ := json.Marshal(payload1)
	bytes2, _ := json.Marshal(payload2)

	hash1 := hex.EncodeToString(Hash(bytes1))
	hash2 := hex.EncodeToString(Hash(bytes2))

	if hash1 == hash2 {
		t.Error("different payloads must produce different hashes")
	}
}

// TestHash_SamePayload_Deterministic проверяет что одинаковая сущность всегда дает одинаковый хеш
func TestHash_SamePayload_Deterministic(t *testing.T) {
	InitHasherPool(testHashKey)

	payload := models.Resource{
		ID:    "res-1",
		Title: "Time, Clocks and the Ordering of Events",
		URL:   "https://example.com/lamport-clocks.pdf",
		Kind:  models.ResourceArticle,
	}

	payloadBytes, _ := json.Marshal(payload)

	hash1 := hex.EncodeToString(Hash(payloadBytes))
	hash2 := hex.EncodeToString(Hash(payloadBytes))

	if hash1 != hash2 {
		t.Errorf("same payload must produce same hash:\n  hash1: %s\n  hash2: %s", hash1, hash2)
	}
}

// TestHash_DifferentKeys проверяет что разные ключи дают разные хеши для одной сущности
func TestHash_DifferentKeys(t *testing.T) {
	payload := models.Topic{
		ID:    "topic-2",
		Title: "Offline-first synchronization",
	}
	payloadBytes, _ := json.Marshal(payload)

	InitHasherPool("key-one")
	hash1 := hex.EncodeToString(Hash(payloadBytes))

	InitHasherPool("key-two")
	hash2 := hex.EncodeToString(Hash(payloadBytes))

	if hash1 == hash2 {
		t.Error("different keys must produce different hashes for the same payload")
	}
}

// TestHash_UnmarshalThenHash проверяет что два JSON с одинаковыми данными,
// но разным порядком полей, после Unmarshal -> Marshal дают одинаковый хеш.
// Это симулирует реальный сценарий в middleware:
// клиент присылает JSON -> сервер декодирует в struct -> считает хеш от struct.
func TestHash_UnmarshalThenHash(t *testing.T) {
	InitHasherPool(testHashKey)

	// Два JSON с одинаковыми значениями, но разным порядком полей
	json1 := []byte(`{"id":"topic-3","title":"CRDTs","summary":"conflict-free replicated data types"}`)
	json2 := []byte(`{"summary":"conflict-free replicated data types","title":"CRDTs","id":"topic-3"}`)

	// Декодируем оба JSON в структуру Topic
	var payload1 models.Topic
	if err := json.Unmarshal(json1, &payload1); err != nil {
		t.Fatalf("failed to unmarshal json1: %v", err)
	}

	var payload2 models.Topic
	if err := json.Unmarshal(json2, &payload2); err != nil {
		t.Fatalf("failed to unmarshal json2: %v", err)
	}

	// Кодируем обратно в байты (теперь порядок полей определяется структурой Go)
	payload1Bytes, err := json.Marshal(payload1)
	if err != nil {
		t.Fatalf("failed to marshal payload1: %v", err)
	}
	payload2Bytes, err := json.Marshal(payload2)
	if err != nil {
		t.Fatalf("failed to marshal payload2: %v", err)
	}

	hash1 := hex.EncodeToString(Hash(payload1Bytes))
	hash2 := hex.EncodeToString(Hash(payload2Bytes))

	if hash1 != hash2 {
		t.Errorf("normalized payloads must produce same hash:\n  hash1: %s\n  hash2: %s", hash1, hash2)
	}
}

func TestHashString(t *testing.T) {
	key := "secret"
	data := "payload-to-sign"

	got := HashString(data, key)

	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(data))
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("HashString mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestHashString_EmptyData(t *testing.T) {
	got := HashString("", "secret")

	if got == "" {
		t.Error("expected non-empty hash for empty data")
	}
}
