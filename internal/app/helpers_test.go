package app_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/emojilens/internal/core/domain"
	"go.trai.ch/emojilens/internal/core/ports/mocks"
	"go.trai.ch/emojilens/internal/engine/emojicache"
	"go.uber.org/mock/gomock"
)

const (
	docOne = "hi <tg-emoji emoji-id=\"100\">😀</tg-emoji>\n"
	docTwo = "bye <tg-emoji emoji-id=\"200\">👋</tg-emoji>\n"
)

// publication is one Publish call seen by the recording sink.
type publication struct {
	uri     string
	text    string
	matches []domain.EmojiMatch
	set     domain.DecorationSet
}

type recordingSink struct {
	mu    sync.Mutex
	items []publication
}

func (r *recordingSink) record(uri, text string, matches []domain.EmojiMatch, set domain.DecorationSet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, publication{uri: uri, text: text, matches: matches, set: set})
}

func (r *recordingSink) snapshot() []publication {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]publication(nil), r.items...)
}

// newRecordingSink returns a mock sink that records every publication.
func newRecordingSink(ctrl *gomock.Controller) (*mocks.MockDecorationSink, *recordingSink) {
	rec := &recordingSink{}
	sink := mocks.NewMockDecorationSink(ctrl)
	sink.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Do(rec.record).Return(nil).AnyTimes()
	return sink, rec
}

// quietLogger accepts any log call.
func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

// memoryStore returns a store mock that starts empty and accepts saves.
func memoryStore(ctrl *gomock.Controller) *mocks.MockCacheStore {
	store := mocks.NewMockCacheStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(map[string]domain.CacheEntry{}, nil).AnyTimes()
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return store
}

// dataEncoder encodes a path as "data:" plus its base name.
func dataEncoder(ctrl *gomock.Controller) *mocks.MockAssetEncoder {
	enc := mocks.NewMockAssetEncoder(ctrl)
	enc.EXPECT().Encode(gomock.Any()).DoAndReturn(func(path string) (string, error) {
		return "data:" + filepath.Base(path), nil
	}).AnyTimes()
	return enc
}

// artifact writes a fake downloaded asset for id and returns its path.
func artifact(t *testing.T, dir, id string) string {
	t.Helper()
	path := filepath.Join(dir, id+".webp")
	require.NoError(t, os.WriteFile(path, []byte("img"), domain.FilePerm))
	return path
}

func testSettings(dir string, debounce time.Duration) domain.Settings {
	s := domain.DefaultSettings()
	s.CacheDir = dir
	s.Debounce = debounce
	return s
}

func newTestCache(ctrl *gomock.Controller, dir string) *emojicache.Cache {
	return emojicache.New(memoryStore(ctrl), dir, dataEncoder(ctrl), quietLogger(ctrl))
}
