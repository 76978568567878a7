package systems

import (
	"encoding/json"

	"github.com/automoto/towerclimb/components"
	"github.com/automoto/towerclimb/tags"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

const recordsKey = "records"

var gdataManager *gdata.Manager

// InitPersistence opens the per-user data store for personal records.
// Layouts are never stored.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	gdataManager = m
	return nil
}

// LoadRecords reads the saved personal records. No store or no save yet
// yields zero records.
func LoadRecords() (components.RecordsData, error) {
	var records components.RecordsData
	if gdataManager == nil {
		return records, nil
	}

	data, err := gdataManager.LoadItem(recordsKey)
	if err != nil {
		logger.Warn("could not load records", zap.Error(err))
		return records, nil
	}
	if len(data) == 0 {
		return records, nil
	}

	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("could not parse saved records", zap.Error(err))
		return components.RecordsData{}, err
	}
	return records, nil
}

// SaveRecords writes records to disk.
func SaveRecords(records *components.RecordsData) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(records)
	if err != nil {
		logger.Warn("could not serialize records", zap.Error(err))
		return err
	}
	if err := gdataManager.SaveItem(recordsKey, data); err != nil {
		logger.Warn("could not save records", zap.Error(err))
		return err
	}
	records.Dirty = false
	return nil
}

// FlushRecords saves the session's records if they changed.
func FlushRecords(w donburi.World) {
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	records := components.Records.Get(session)
	if !records.Dirty {
		return
	}
	_ = SaveRecords(records)
}

func recordCheckpoints(w donburi.World, count int) {
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	records := components.Records.Get(session)
	if count > records.MostCheckpoints {
		records.MostCheckpoints = count
		records.Dirty = true
		FlushRecords(w)
	}
}
