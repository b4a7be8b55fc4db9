package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Ramcharan1706/SkillSwap/config"
	"github.com/Ramcharan1706/SkillSwap/controller"
	"github.com/Ramcharan1706/SkillSwap/dao"
	"github.com/Ramcharan1706/SkillSwap/logic"
	"github.com/Ramcharan1706/SkillSwap/middleware"
	"github.com/Ramcharan1706/SkillSwap/models"
	"github.com/Ramcharan1706/SkillSwap/pkg"
)

func main() {
	// Initialize config
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run main.go <config.yaml>")
	}
	configFile := os.Args[1]
	if err := config.LoadConfig(configFile); err != nil {
		log.Fatalf("Failed to load config from %s: %v", configFile, err)
	}

	// Initialize database
	db, err := gorm.Open(postgres.Open(config.GlobalConfig.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.Session{},
		&models.RewardAsset{},
		&models.DepositEvent{},
		&models.LedgerState{},
	)

	// Initialize relay client for deposit events
	nostrClient, err := pkg.NewNostrClient(
		config.GlobalConfig.Relay.URL,
		config.GlobalConfig.Relay.LedgerPubkey,
		config.GlobalConfig.Relay.AppPubkey,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Nostr client: %v", err)
	}

	// Initialize asset service client
	assetClient := pkg.NewAssetClient(
		config.GlobalConfig.Assets.BaseURL,
		config.GlobalConfig.Assets.APIKey,
	)
	escrowAddress := config.GlobalConfig.Assets.EscrowAddress

	// Initialize DAOs
	userDAO := dao.NewUserDAO(db)
	skillDAO := dao.NewSkillDAO(db)
	sessionDAO := dao.NewSessionDAO(db)
	rewardDAO := dao.NewRewardDAO(db)
	depositDAO := dao.NewDepositEventDAO(db)
	stateDAO := dao.NewStateDAO(db)
	if err := stateDAO.Init(); err != nil {
		log.Fatalf("Failed to initialize ledger state: %v", err)
	}

	// Initialize Logics
	userLogic := logic.NewUserLogic(userDAO)
	skillLogic := logic.NewSkillLogic(userDAO, skillDAO, stateDAO)
	tokenLogic := logic.NewTokenLogic(userDAO)
	sessionLogic := logic.NewSessionLogic(userDAO, skillDAO, sessionDAO, stateDAO, assetClient, escrowAddress)
	rewardLogic := logic.NewRewardLogic(userDAO, sessionDAO, rewardDAO, assetClient, escrowAddress)
	depositLogic := logic.NewDepositLogic(userDAO, depositDAO, nostrClient)

	// Initialize Controllers
	userCtrl := controller.NewUserController(userLogic)
	skillCtrl := controller.NewSkillController(skillLogic)
	tokenCtrl := controller.NewTokenController(tokenLogic)
	sessionCtrl := controller.NewSessionController(sessionLogic)
	rewardCtrl := controller.NewRewardController(rewardLogic)
	depositCtrl := controller.NewDepositController(depositLogic)

	// Start deposit event listener in a goroutine
	go depositCtrl.StartDepositServices()

	// Setup Gin router
	r := gin.Default()
	r.POST("/user/register", userCtrl.Register)
	r.POST("/user/login", userCtrl.Login)
	r.GET("/user", middleware.Auth, userCtrl.GetUser)
	r.GET("/users/:pubkey/reputation", userCtrl.GetReputation)
	r.GET("/users/:pubkey/balance", userCtrl.GetBalance)

	r.POST("/admin/skill-token", middleware.Auth, skillCtrl.SetSkillToken)
	r.POST("/skills", middleware.Auth, skillCtrl.ListSkill)
	r.GET("/skills", skillCtrl.GetSkills)
	r.GET("/skills/:id", skillCtrl.GetSkill)
	r.PATCH("/skills/:id/availability", middleware.Auth, skillCtrl.SetAvailability)

	r.POST("/tokens/transfer", middleware.Auth, tokenCtrl.Transfer)

	r.POST("/sessions", middleware.Auth, sessionCtrl.BookSession)
	r.GET("/sessions", middleware.Auth, sessionCtrl.GetSessions)
	r.POST("/sessions/:id/complete", middleware.Auth, sessionCtrl.CompleteSession)
	r.POST("/sessions/:id/cancel", middleware.Auth, sessionCtrl.CancelSession)

	r.POST("/sessions/:id/award", middleware.Auth, rewardCtrl.AwardToStudent)
	r.POST("/sessions/:id/booking-award", middleware.Auth, rewardCtrl.AwardForBooking)
	r.POST("/nfts/claim", middleware.Auth, rewardCtrl.Claim)
	r.GET("/users/:pubkey/nfts", rewardCtrl.GetLearnerNFTs)
	r.GET("/users/:pubkey/nfts/assets", rewardCtrl.GetUserNFTAssetIDs)
	r.GET("/users/:pubkey/nfts/available", rewardCtrl.GetAvailableNFTs)

	// Run server
	if err := r.Run(fmt.Sprintf(":%d", config.GlobalConfig.Server.Port)); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
