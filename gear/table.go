// Package gear holds the fixed 256-entry gear table used by the content-defined
// chunking boundary detector. The table is opaque, constant data: any two
// implementations that use a different table will chunk identical input
// differently, so the values here are themselves part of the wire contract.
package gear

// Table is the gear lookup table indexed by input byte value. It is read-only,
// process-wide data; nothing in this package ever mutates it.
var Table = [256]uint64{
	0x16b9d7bad13b5e3c, 0x3daec6c47851565d, 0x1029915992e3babb, 0x191de792687349ea,
	0x558bab91a94d633b, 0x350e71378f70ebba, 0xb3fe17fb9c191ea4, 0x3eeaade00b80795f,
	0xebc30ee8a70ec016, 0x021aa466b483b1e2, 0xe1157588bae201aa, 0x11cbcecbe8b5385c,
	0xfde364fafe4f8910, 0x64e08b064f2c827c, 0x72b671c338e768bf, 0xf823f7a697c7e8b0,
	0x45380cd0bff48a52, 0xfdd9cbf1600dd40a, 0xc3c7de0f2ba1a4c5, 0x3bef0ccfe09c32b3,
	0xcf29e5969fa52152, 0x0a2e6a6cc93b7fe3, 0x4e47804f4d1f8ed7, 0x009047ee6ee3d3d4,
	0x9d6c2a44b8abd7dc, 0x5134a24de38a66ee, 0xcb415cb78956dc9d, 0xc2212e68a334e0ef,
	0xd7cf74ae304d37d3, 0x4da90d99b2332f14, 0x741ca2c7b8cf95d1, 0x547f47c5f256f8e9,
	0x42b8c182e07b0752, 0xd656ab9c5de34d2d, 0x377ce6dead355734, 0x6b03305c4bfbd1ba,
	0xa13119e39b18f028, 0xe36a4c7053377048, 0x797be1b24e9b8750, 0x114188883e70fed2,
	0x5eb996da6fd63bdc, 0x0ce16e75a9280d19, 0x9f644d45f535702c, 0x7c14f90e15ab0ab0,
	0x6fa31758843ece89, 0xb3937a3e91cda414, 0xafa1c227d6985294, 0xbbba17e37ca9bd8e,
	0xf077f58743e4bea4, 0x8f2fa3231314535c, 0x102b2af86ce0ca5b, 0x8bb35e4cc44c77a4,
	0x1b84f071161bea7d, 0x1eb0ae7f8f8cb80b, 0x87fce6bb23d45af3, 0x21c6aa0fd5da8c71,
	0x932dc6e7914e48c1, 0x26aa946a0314f0df, 0x0ef052eb3c8b233c, 0x61b43b7381738c08,
	0xf58417e2a73bf676, 0x4589af74b6fba49f, 0xcbf26304b52eec74, 0x36704984314d05c2,
	0x2b4879ee0799fde4, 0x78f49b79dc5783f4, 0x76f95cc1c37e268f, 0xe1460184ab64bef6,
	0x6344d996786721b7, 0xf9954495ed3d1294, 0x0675201dd182ecb4, 0x752faa80f7a74deb,
	0xbe7b1d66bde951da, 0xcd4d0d488b502e50, 0x0fa91cc517af8d82, 0x711b9ae7d57d32a0,
	0x3a81503f5b39581d, 0x075e7659a7fa9386, 0x93e28d140da97013, 0x324395e7d715b8fc,
	0xde68b9de5ce4437a, 0xe005c899c3137c47, 0xf58ba56a46286539, 0xa0075a6fd1857b92,
	0xd2e0e86413a5e68f, 0xcf5540cfa325505e, 0x63b90d8050b82935, 0x599c7a0add89a887,
	0x8bf346f8747b1762, 0x7915c7559a7d81e0, 0xfe3279ab23c58f4f, 0x6dec611bf70f81fa,
	0xd865afedf9f663a4, 0xca0546b3888543a8, 0xc3833b22fb0812fa, 0x963c97c302d71089,
	0xb4fecfd78b30efd3, 0xdd8db953d6910cf6, 0x2a70e7cb2f460814, 0xffaea84916d3bc34,
	0xdc8df89e3a7ee42e, 0xa95ecc9b911efdde, 0x321981bf358cb063, 0xbbd65ac8cfdc492f,
	0x0e62b8b03f765ccb, 0x352c93ccc16fca9d, 0x74a36d5a2224a864, 0x4a379a61bd97d6e7,
	0xfdf15046c128a989, 0x514bd908e12f7b99, 0xe198c44216a27073, 0x5e81b7dd20028417,
	0x12410b731b2deac9, 0xd3b22950045eb54a, 0x8f157d9675427aa5, 0xa016800452469324,
	0x2f7a28ea397fd1cb, 0x94851083c8f66435, 0x040a93a9b6f53f64, 0x4aa2f77e005ca47e,
	0xaa8e3f14e4f966db, 0xd72e36ec3925ed52, 0xbb689114829f54d8, 0x6711a0205cce02f2,
	0x313e9cd5a33a009d, 0x00907ced7768d130, 0x124718866aae7c29, 0xbe38e5fb196e7622,
	0xfad7b32f6cb6a50b, 0xedef5518cb640158, 0x7dae1500ab59f442, 0x7821dbd8a4fe68c7,
	0x84bb1b52cc13f730, 0xab539ba22a577985, 0x01e60eb495ff64d1, 0x926cb01e07fb49bc,
	0xe96537c2e68dc999, 0xa1814ece85d847f9, 0x554906e6598dd834, 0xa5ecaafc89e91e2b,
	0x33f198fb60b628e5, 0xd56cbee6704d70ee, 0x7b59668a2a3559e3, 0x09d540694155b9a2,
	0x8c0f8148144474a3, 0x4fff96688b00f37e, 0xecfd56ca11a5b9f7, 0x38fc48eca9500b8c,
	0x7f807e86bd408f08, 0xfcf566a99f98c7aa, 0xf71deb28199049b4, 0x57ae6e09057389fe,
	0xb7663175a27f1ab3, 0x9d8e2ecfd3d160b1, 0xafc44357ae3f6302, 0xd4f5ed4dc60c12c1,
	0x8c3cb30dfd835e53, 0xb0213549c988ae37, 0x759f6fd9fa79efcd, 0xcf03cad79fd19ff6,
	0x99f38179756eed66, 0x76fab21a55fa3388, 0x7a40cb559336b001, 0xb7e4acd6b3eb2524,
	0xb6c9042e7cd01d03, 0x66863e8fe02f6051, 0x877132278e32fc58, 0xb3b648020d6a06b1,
	0xcef25b6f1cfba9a5, 0xd7fa9142a49372c7, 0x1aea125c8795bce5, 0xe956b97596b090cb,
	0x4a6426313d94e9c5, 0x5cce2f91cd4e608d, 0xbeb016d7c0254207, 0x9184370782a0d34a,
	0x48902da75412b0a8, 0x49f0ecacb98955cf, 0xfe39ccc533e21893, 0xb9c61953ed95d371,
	0x94ed3d513887a73d, 0xf70a86cf61f0c1b4, 0xcb17e7bc7b13ad70, 0x14cb0df5abca565d,
	0x51a43a064a39c169, 0xd766f0b34a410043, 0x42d90f602e94addb, 0x276940ea7672dc88,
	0x86b2610a71f4a774, 0x670e3ad889afe766, 0x2f5dbe658770dde6, 0xc21e6c7d3a77b6e7,
	0xaca5e73ee58ce4f7, 0xdc3f4ad32d40bdd9, 0xad143a78db74c5fb, 0xeba95ee2ddb1084a,
	0x21a96f0a4ecd0879, 0xd99d5a9402f056e5, 0xe6c95db1bceca407, 0x3e0c086b4b8c4a39,
	0x447f6337cdc785e8, 0x2d136a69bc92ae23, 0xfad6b1fb34539d52, 0x0d72ac38185dae54,
	0xa914e96748fdb6bb, 0x73e21d3aa6f1fb07, 0xe186b51459f8cc08, 0x8365059378144538,
	0x42160126a0ccee65, 0x1c28d39cf7588a2a, 0x59a1d8838bda6f5a, 0x76c31ce65d5196b8,
	0x11f6862dca8a5d71, 0xb31fbef5e47be90a, 0x36c0520ef5959f0a, 0x0406f40329adbf09,
	0xc9c34d793f1e7f69, 0x0076533954c56759, 0xcbac5ebb3b449813, 0x50642f1ec15d5fa4,
	0xcfd1c00633d9ed4b, 0x8d33a99fbbc02b9b, 0xa75b5c3aa3897cea, 0xf18e547830fe9b25,
	0xc0d2614ea1d7d453, 0xf5d86c52d3848bb2, 0x860372e8bf3068b9, 0x2edd6c843298e201,
	0xd2cb0a919ca9c135, 0xfd45779d6c62d4a3, 0x84bb1e123e939f03, 0x1c9ab24af1d22687,
	0xf7d13f69e217f1f2, 0x238b2a41646a07c9, 0xe4e3e97dbe471ca3, 0xacf9138a419c7896,
	0x831630616a9fb69d, 0x70052cf72a9b9772, 0x7f52fd1f7a78fd31, 0xb54dd923f5928052,
	0xf6c2cd5e828e864a, 0x0bfe91b7daf5670e, 0xe663fe3cd09599c5, 0xb2547424d1d57d88,
	0xb9980220952d510d, 0x6307e4d8cae13696, 0x728c61b467b73ed8, 0x6b149b07149f4db4,
	0x487b74ddebeb2da4, 0x130d167021f9c5dd, 0x50a12a3dfa648986, 0x48b1c49648bd0b50,
	0x633cb9c0be1a6097, 0x4172c16376f7e09f, 0x99517807f17727eb, 0x06785790c4d3eceb,
}
