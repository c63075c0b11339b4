package config

type Store struct {
	Path InterpolatedString `yaml:"path"`
}

func NewDefaultStoreConfig() Store {
	return Store{
		Path: "${MENUD_STORE_PATH:-menud.db}",
	}
}
