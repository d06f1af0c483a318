package database

import (
	"fmt"
	"log"

	"twi_edu_backend/internal/config"
	"twi_edu_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 建连并按需执行迁移。release 模式默认不迁移，
// 用 --migrate / --migrate-only 显式触发
func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if migrate {
		err = db.AutoMigrate(
			&model.User{},
			&model.Word{},
			&model.WordOfTheDay{},
			&model.QuizQuestion{},
			&model.QuizHistory{},
			&model.ContactMessage{},
		)
		if err != nil {
			return nil, err
		}
		log.Println("Database migration completed")

		seedDefaultAdmin(db)
	}

	return db, nil
}

// seedDefaultAdmin 用户表为空时写入默认管理员，密码须在首次登录后修改
func seedDefaultAdmin(db *gorm.DB) {
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count != 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	admin := &model.User{
		Username: "admin",
		Password: string(hashed),
		Role:     model.RoleAdmin,
	}
	if err := db.Create(admin).Error; err == nil {
		log.Println("Default admin account created (username: admin)")
	}
}
