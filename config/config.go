package config

func InitializeConfig() error {
	NewLoggerService()
	if err := LoadAppConfig(); err != nil {
		return err
	}

	return nil
}
