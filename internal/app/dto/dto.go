package dto

import "time"

// ============ Common ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Transactions ============

type TransactionResponse struct {
	ID         uint      `json:"id"`
	Jenis      string    `json:"jenis"`
	Kategori   string    `json:"kategori"`
	Jumlah     int64     `json:"jumlah"`
	Tanggal    time.Time `json:"tanggal"`
	Keterangan string    `json:"keterangan"`
	HasReceipt bool      `json:"has_receipt"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}

type CreateTransactionRequest struct {
	Jenis      string `json:"jenis" binding:"required,oneof=pemasukan pengeluaran"`
	Kategori   string `json:"kategori" binding:"required"`
	Jumlah     int64  `json:"jumlah" binding:"required,gte=0"`
	Tanggal    string `json:"tanggal" binding:"required"` // RFC3339 or YYYY-MM-DD
	Keterangan string `json:"keterangan"`
}

type UpdateTransactionRequest struct {
	Jenis      string  `json:"jenis" binding:"omitempty,oneof=pemasukan pengeluaran"`
	Kategori   string  `json:"kategori"`
	Jumlah     *int64  `json:"jumlah" binding:"omitempty,gte=0"`
	Tanggal    string  `json:"tanggal"`
	Keterangan *string `json:"keterangan"`
}

type ReceiptURLResponse struct {
	URL string `json:"url"`
}

// ============ Franchises ============

type FranchiseResponse struct {
	ID        uint      `json:"id"`
	Nama      string    `json:"nama"`
	Pemilik   string    `json:"pemilik"`
	Telepon   string    `json:"telepon"`
	Alamat    string    `json:"alamat"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FranchiseListResponse struct {
	Items []FranchiseResponse `json:"items"`
	Total int                 `json:"total"`
}

type CreateFranchiseRequest struct {
	Nama    string `json:"nama" binding:"required"`
	Pemilik string `json:"pemilik"`
	Telepon string `json:"telepon"`
	Alamat  string `json:"alamat"`
	Status  string `json:"status" binding:"omitempty,oneof=aktif nonaktif"`
}

type UpdateFranchiseRequest struct {
	Nama    string  `json:"nama"`
	Pemilik *string `json:"pemilik"`
	Telepon *string `json:"telepon"`
	Alamat  *string `json:"alamat"`
	Status  string  `json:"status" binding:"omitempty,oneof=aktif nonaktif"`
}

// ============ Franchise finances ============

// FranchiseFinanceResponse carries the splits recomputed from
// total_payment_cust at serve time; the stored columns are not echoed.
type FranchiseFinanceResponse struct {
	ID               uint      `json:"id"`
	FranchiseID      uint      `json:"franchise_id"`
	FranchiseNama    string    `json:"franchise_nama"`
	Tanggal          time.Time `json:"tanggal"`
	TotalPaymentCust int64     `json:"total_payment_cust"`
	FeeMentor        int64     `json:"fee_mentor"`
	KomisiMitra      int64     `json:"komisi_mitra"`
	KeuntunganBersih int64     `json:"keuntungan_bersih"`
	Keterangan       string    `json:"keterangan"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type FranchiseFinanceListResponse struct {
	Items []FranchiseFinanceResponse `json:"items"`
	Total int                        `json:"total"`
}

type CreateFranchiseFinanceRequest struct {
	FranchiseID      uint   `json:"franchise_id" binding:"required"`
	Tanggal          string `json:"tanggal" binding:"required"`
	TotalPaymentCust int64  `json:"total_payment_cust" binding:"required,gte=0"`
	Keterangan       string `json:"keterangan"`
}

type UpdateFranchiseFinanceRequest struct {
	Tanggal          string  `json:"tanggal"`
	TotalPaymentCust *int64  `json:"total_payment_cust" binding:"omitempty,gte=0"`
	Keterangan       *string `json:"keterangan"`
}

// ============ Mitra orders ============

type MitraOrderResponse struct {
	ID              uint      `json:"id"`
	NamaCustomer    string    `json:"nama_customer"`
	Layanan         string    `json:"layanan"`
	WorkerID        *uint     `json:"worker_id,omitempty"`
	WorkerNama      string    `json:"worker_nama,omitempty"`
	TotalDp         int64     `json:"total_dp"`
	TotalPembayaran int64     `json:"total_pembayaran"`
	Kekurangan      int64     `json:"kekurangan"`
	FeeFreelance    int64     `json:"fee_freelance"`
	Status          string    `json:"status"`
	Tanggal         time.Time `json:"tanggal"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type MitraOrderListResponse struct {
	Items []MitraOrderResponse `json:"items"`
	Total int                  `json:"total"`
}

type CreateMitraOrderRequest struct {
	NamaCustomer    string `json:"nama_customer" binding:"required"`
	Layanan         string `json:"layanan"`
	WorkerID        *uint  `json:"worker_id"`
	TotalDp         int64  `json:"total_dp" binding:"gte=0"`
	TotalPembayaran int64  `json:"total_pembayaran" binding:"required,gte=0"`
	Status          string `json:"status" binding:"omitempty,oneof=proses selesai batal"`
	Tanggal         string `json:"tanggal" binding:"required"`
}

type UpdateMitraOrderRequest struct {
	NamaCustomer    string  `json:"nama_customer"`
	Layanan         *string `json:"layanan"`
	WorkerID        *uint   `json:"worker_id"`
	TotalDp         *int64  `json:"total_dp" binding:"omitempty,gte=0"`
	TotalPembayaran *int64  `json:"total_pembayaran" binding:"omitempty,gte=0"`
	Status          string  `json:"status" binding:"omitempty,oneof=proses selesai batal"`
	Tanggal         string  `json:"tanggal"`
}

// ============ Workers ============

type WorkerResponse struct {
	ID        uint      `json:"id"`
	Nama      string    `json:"nama"`
	Telepon   string    `json:"telepon"`
	Keahlian  string    `json:"keahlian"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WorkerListResponse struct {
	Items []WorkerResponse `json:"items"`
	Total int              `json:"total"`
}

type CreateWorkerRequest struct {
	Nama     string `json:"nama" binding:"required"`
	Telepon  string `json:"telepon"`
	Keahlian string `json:"keahlian"`
	Status   string `json:"status" binding:"omitempty,oneof=aktif nonaktif"`
}

type UpdateWorkerRequest struct {
	Nama     string  `json:"nama"`
	Telepon  *string `json:"telepon"`
	Keahlian *string `json:"keahlian"`
	Status   string  `json:"status" binding:"omitempty,oneof=aktif nonaktif"`
}

// ============ Account management gateway ============

// ManageUsersRequest is the body of POST /manage-users. The gateway keeps
// the exact wire contract the admin UI was built against, so its request
// and response shapes deliberately differ from the rest of the API.
type ManageUsersRequest struct {
	Action   string `json:"action"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserID   string `json:"userId"`
}

type ManagedUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
